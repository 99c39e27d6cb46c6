package mem

import (
	"fmt"
	"math"
	"unsafe"
)

// RawBuffer owns one raw block reinterpreted as capacity slots of T.
// It manages storage only: slots are uninitialized until the owner
// writes them, and Free never looks at slot contents. The zero value is
// an empty buffer.
//
// The buffer carries its allocator, so it is always returned to the
// allocator that produced it no matter who holds it by then.
type RawBuffer[T any] struct {
	alloc Allocator
	block []byte
	cap   int
}

// NewRawBuffer allocates storage for capacity elements of T. Capacity 0
// performs no allocation. A nil allocator means Default. Panics if T
// contains Go pointers (see HasPointers) or capacity is negative.
func NewRawBuffer[T any](a Allocator, capacity int) (RawBuffer[T], error) {
	if HasPointers[T]() {
		panic("mem: element type contains Go pointers")
	}
	if capacity < 0 {
		panic("mem: negative capacity")
	}
	if a == nil {
		a = Default
	}
	if capacity == 0 {
		return RawBuffer[T]{alloc: a}, nil
	}
	size := sizeOf[T]()
	if size > 0 && capacity > math.MaxInt/size {
		return RawBuffer[T]{}, fmt.Errorf("mem: %d elements of %d bytes: %w", capacity, size, ErrTooLarge)
	}
	block, err := a.Allocate(capacity * size)
	if err != nil {
		return RawBuffer[T]{}, fmt.Errorf("mem: allocate %d bytes: %w", capacity*size, err)
	}
	return RawBuffer[T]{alloc: a, block: block, cap: capacity}, nil
}

// Cap returns the number of slots.
func (b *RawBuffer[T]) Cap() int { return b.cap }

// Slice returns the full-capacity view of the block. Slots the owner
// has not written hold unspecified bytes. The view is invalidated by
// Swap and Free.
func (b *RawBuffer[T]) Slice() []T {
	if b.cap == 0 {
		return nil
	}
	if sizeOf[T]() == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&zeroSized)), b.cap)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b.block))), b.cap)
}

// At returns the address of slot i. The slot may be uninitialized.
func (b *RawBuffer[T]) At(i int) *T {
	if i < 0 || i >= b.cap {
		panic("mem: slot index out of range")
	}
	return &b.Slice()[i]
}

// Swap exchanges storage and allocators with other.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	*b, *other = *other, *b
}

// Free returns the block to its allocator and leaves an empty, reusable
// buffer. Safe on an empty buffer, and more than once.
func (b *RawBuffer[T]) Free() {
	if b.block != nil && b.alloc != nil {
		b.alloc.Deallocate(b.block)
	}
	b.block = nil
	b.cap = 0
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// zeroSized backs every slot of zero-size element types; no allocation
// is needed for them.
var zeroSized struct{}
