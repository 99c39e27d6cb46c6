package vec

import (
	"sync"

	"github.com/cwbudde/algo-vec/mem"
)

// Pool provides sync.Pool-based vector reuse so hot paths keep their
// grown capacity instead of reallocating. Pooled buffers are reclaimed
// only by the collector, so pools suit allocators whose blocks the
// collector owns; vectors backed by MmapAllocator should be Freed, not
// pooled.
type Pool[T any] struct {
	cfg  Config[T]
	pool sync.Pool
}

// NewPool returns a Pool whose vectors use cfg. Panics on element types
// containing Go pointers.
func NewPool[T any](cfg ...Config[T]) *Pool[T] {
	if mem.HasPointers[T]() {
		panic("vec: element type contains Go pointers")
	}
	p := &Pool[T]{cfg: applyConfig(cfg)}
	p.pool.New = func() any {
		return &Vector[T]{traits: p.cfg.Traits, alloc: p.cfg.Allocator}
	}
	return p
}

// Get returns a vector resized to length, its elements freshly
// value-constructed. Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) (*Vector[T], error) {
	v := p.pool.Get().(*Vector[T])
	if p.cfg.Capacity > length {
		if err := v.Reserve(p.cfg.Capacity); err != nil {
			p.pool.Put(v)
			return nil, err
		}
	}
	if err := v.Resize(length); err != nil {
		p.pool.Put(v)
		return nil, err
	}
	return v, nil
}

// Put clears the vector and recycles its capacity. The caller must not
// use the vector after calling Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	v.Clear()
	p.pool.Put(v)
}
