package mem

import (
	"fmt"
	"math"
	"sync"
)

// PoolAllocator recycles blocks through power-of-two size classes built
// on sync.Pool. Recycled blocks retain their previous contents, so
// callers must treat every block as uninitialized. Requests larger than
// the biggest class fall through to the heap and are not recycled.
type PoolAllocator struct {
	classes []poolClass
}

type poolClass struct {
	size int
	pool sync.Pool
}

// NewPoolAllocator returns a pool with classes covering [minSize, maxSize],
// both rounded up to powers of two.
func NewPoolAllocator(minSize, maxSize int) (*PoolAllocator, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf("mem: pool min size must be > 0: %d", minSize)
	}
	if maxSize < minSize {
		return nil, fmt.Errorf("mem: pool max size %d below min size %d", maxSize, minSize)
	}
	if maxSize > math.MaxInt/2 {
		return nil, fmt.Errorf("mem: pool max size too large: %d", maxSize)
	}
	p := &PoolAllocator{}
	for size := ceilPow2(minSize); ; size *= 2 {
		p.classes = append(p.classes, poolClass{size: size})
		if size >= maxSize {
			break
		}
	}
	for i := range p.classes {
		size := p.classes[i].size
		p.classes[i].pool.New = func() any {
			b := alignedBlock(size)
			return &b
		}
	}
	return p, nil
}

// Allocate returns a block of the smallest class that fits, or a fresh
// heap block when size exceeds the biggest class.
func (p *PoolAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		panic("mem: negative allocation size")
	}
	if size == 0 {
		return nil, nil
	}
	for i := range p.classes {
		if p.classes[i].size >= size {
			return *p.classes[i].pool.Get().(*[]byte), nil
		}
	}
	return alignedBlock(size), nil
}

// Deallocate recycles class-sized blocks; anything else is left to the
// collector.
func (p *PoolAllocator) Deallocate(block []byte) {
	if len(block) == 0 {
		return
	}
	for i := range p.classes {
		if p.classes[i].size == len(block) {
			p.classes[i].pool.Put(&block)
			return
		}
	}
}

func ceilPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
