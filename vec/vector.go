package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vec/mem"
)

// Vector is a growable contiguous sequence over raw storage. Slots
// [0, Len) hold constructed elements, slots [Len, Cap) are raw. The
// zero value is not ready for use; construct vectors with New or
// FromSlice. A Vector must not be shared between goroutines without
// external synchronization.
type Vector[T any] struct {
	buf    mem.RawBuffer[T]
	len    int
	traits Traits[T]
	alloc  mem.Allocator
}

// New returns a vector holding length value-constructed elements.
// Capacity is exactly length unless cfg reserves more. On a
// mid-construction failure everything built so far is destroyed, the
// storage is released and the error returned. Panics on negative
// length and on element types containing Go pointers.
func New[T any](length int, cfg ...Config[T]) (*Vector[T], error) {
	if length < 0 {
		panic("vec: negative length")
	}
	if mem.HasPointers[T]() {
		panic("vec: element type contains Go pointers")
	}
	c := applyConfig(cfg)
	capacity := length
	if c.Capacity > capacity {
		capacity = c.Capacity
	}
	v := &Vector[T]{traits: c.Traits, alloc: c.Allocator}
	buf, err := mem.NewRawBuffer[T](c.Allocator, capacity)
	if err != nil {
		return nil, fmt.Errorf("vec: new vector of %d: %w", length, err)
	}
	v.buf = buf
	s := v.buf.Slice()
	for i := 0; i < length; i++ {
		if err := v.traits.construct(&s[i]); err != nil {
			v.traits.destroyRange(s[:i])
			v.buf.Free()
			return nil, fmt.Errorf("vec: construct element %d: %w", i, err)
		}
	}
	v.len = length
	return v, nil
}

// FromSlice returns a vector holding copies of src. The caller keeps
// ownership of the originals. Fails with ErrNotCloneable when the
// traits cannot duplicate elements.
func FromSlice[T any](src []T, cfg ...Config[T]) (*Vector[T], error) {
	c := applyConfig(cfg)
	if !c.Traits.copyable() {
		return nil, ErrNotCloneable
	}
	if c.Capacity < len(src) {
		c.Capacity = len(src)
	}
	v, err := New[T](0, c)
	if err != nil {
		return nil, err
	}
	if err := c.Traits.cloneRange(v.buf.Slice()[:len(src)], src); err != nil {
		v.buf.Free()
		return nil, err
	}
	v.len = len(src)
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.len }

// Cap returns the number of slots the vector can hold without growing.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// At returns a pointer to element i. The pointer stays valid until the
// next reallocation. Panics when i is out of range.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.len {
		panic("vec: index out of range")
	}
	return &v.buf.Slice()[i]
}

// Get returns element i by value, false when out of range. The value
// is a bitwise view; the vector keeps ownership of any resources.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.len {
		var zero T
		return zero, false
	}
	return v.buf.Slice()[i], true
}

// Set replaces element i with x, destroying the previous element. The
// vector takes ownership of x. Panics when i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	p := v.At(i)
	v.traits.destroy(p)
	*p = x
}

// Slice returns the live elements. The view is invalidated by any
// operation that reallocates.
func (v *Vector[T]) Slice() []T {
	return v.buf.Slice()[:v.len]
}

// Reserve grows capacity to exactly n. It is a no-op when n <= Cap().
// On failure the vector is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}
	return v.regrow(n)
}

// regrow relocates the live elements into a fresh buffer of capacity n.
func (v *Vector[T]) regrow(n int) error {
	nb, err := mem.NewRawBuffer[T](v.alloc, n)
	if err != nil {
		return fmt.Errorf("vec: grow to %d: %w", n, err)
	}
	live := v.buf.Slice()[:v.len]
	if err := v.traits.transfer(nb.Slice()[:v.len], live); err != nil {
		nb.Free()
		return err
	}
	v.traits.releaseTransferred(live)
	v.buf.Swap(&nb)
	nb.Free()
	return nil
}

// grownCap doubles capacity, starting at 1.
func (v *Vector[T]) grownCap() int {
	c := v.buf.Cap()
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	}
	return c * 2
}

// PushBack appends x. The vector takes ownership of x on success; on
// error the caller keeps it and the vector is unchanged.
func (v *Vector[T]) PushBack(x T) (*T, error) {
	return v.emplaceBack(func(p *T) error { *p = x; return nil }, false)
}

// EmplaceBack appends an element built in place by ctor. The slot is
// zeroed before ctor runs; a ctor error leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(ctor Constructor[T]) (*T, error) {
	if ctor == nil {
		panic("vec: nil constructor")
	}
	return v.emplaceBack(ctor, true)
}

// emplaceBack appends via ctor. ctorOwns tells rollback whether an
// element the ctor built in an abandoned buffer must be destroyed;
// adopted values stay owned by the caller when the operation fails.
func (v *Vector[T]) emplaceBack(ctor Constructor[T], ctorOwns bool) (*T, error) {
	if v.len < v.buf.Cap() {
		p := v.buf.At(v.len)
		var zero T
		*p = zero
		if err := ctor(p); err != nil {
			return nil, fmt.Errorf("vec: construct element %d: %w", v.len, err)
		}
		v.len++
		return p, nil
	}
	return v.appendGrow(ctor, ctorOwns)
}

// appendGrow grows the buffer with the new element constructed at its
// final slot before the old elements relocate, so appending an element
// drawn from the vector itself stays safe and a failed relocation
// cannot lose it.
func (v *Vector[T]) appendGrow(ctor Constructor[T], ctorOwns bool) (*T, error) {
	n := v.grownCap()
	nb, err := mem.NewRawBuffer[T](v.alloc, n)
	if err != nil {
		return nil, fmt.Errorf("vec: grow to %d: %w", n, err)
	}
	ns := nb.Slice()
	slot := &ns[v.len]
	var zero T
	*slot = zero
	if err := ctor(slot); err != nil {
		nb.Free()
		return nil, fmt.Errorf("vec: construct element %d: %w", v.len, err)
	}
	live := v.buf.Slice()[:v.len]
	if err := v.traits.transfer(ns[:v.len], live); err != nil {
		if ctorOwns {
			v.traits.destroy(slot)
		}
		nb.Free()
		return nil, err
	}
	v.traits.releaseTransferred(live)
	v.buf.Swap(&nb)
	nb.Free()
	v.len++
	return slot, nil
}

// Insert places x at position i, shifting later elements right. i may
// equal Len (append). The vector takes ownership of x on success; on
// error the caller keeps it.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	if i < 0 || i > v.len {
		panic("vec: insert position out of range")
	}
	return v.emplaceAt(i, func(p *T) error { *p = x; return nil }, false)
}

// Emplace builds an element at position i via ctor, shifting later
// elements right. i may equal Len (append).
func (v *Vector[T]) Emplace(i int, ctor Constructor[T]) (*T, error) {
	if i < 0 || i > v.len {
		panic("vec: insert position out of range")
	}
	if ctor == nil {
		panic("vec: nil constructor")
	}
	return v.emplaceAt(i, ctor, true)
}

func (v *Vector[T]) emplaceAt(i int, ctor Constructor[T], ctorOwns bool) (*T, error) {
	if i == v.len {
		return v.emplaceBack(ctor, ctorOwns)
	}
	if v.len == v.buf.Cap() {
		return v.insertGrow(i, ctor, ctorOwns)
	}
	return v.insertShift(i, ctor, ctorOwns)
}

// insertShift inserts within existing capacity. The new element is
// built first, the last element relocates into the raw tail slot, the
// run (i, len-1) shifts right by assignment and the new element lands
// in slot i.
//
// For clone-relocating traits a failed shift step destroys only the
// temporary and the fresh tail clone: the length is unchanged and every
// slot within it stays valid, but slots already shifted keep their new
// values.
func (v *Vector[T]) insertShift(i int, ctor Constructor[T], ctorOwns bool) (*T, error) {
	var tmp T
	if err := ctor(&tmp); err != nil {
		return nil, fmt.Errorf("vec: construct element %d: %w", i, err)
	}
	s := v.buf.Slice()
	switch v.traits.relocation() {
	case relocMove:
		v.traits.Move(&s[v.len], &s[v.len-1])
		for j := v.len - 1; j > i; j-- {
			v.traits.Move(&s[j], &s[j-1])
		}
		v.traits.Move(&s[i], &tmp)
	case relocClone:
		if err := v.traits.cloneInto(&s[v.len], &s[v.len-1]); err != nil {
			if ctorOwns {
				v.traits.destroy(&tmp)
			}
			return nil, fmt.Errorf("vec: shift element %d: %w", v.len-1, err)
		}
		for j := v.len - 1; j > i; j-- {
			var c T
			if err := v.traits.cloneInto(&c, &s[j-1]); err != nil {
				v.traits.destroy(&s[v.len])
				if ctorOwns {
					v.traits.destroy(&tmp)
				}
				return nil, fmt.Errorf("vec: shift element %d: %w", j-1, err)
			}
			v.traits.destroy(&s[j])
			s[j] = c
		}
		v.traits.destroy(&s[i])
		s[i] = tmp
	default:
		copy(s[i+1:v.len+1], s[i:v.len])
		s[i] = tmp
	}
	v.len++
	return &s[i], nil
}

// insertGrow inserts during reallocation: the new element is built at
// its final position in the new buffer before the two halves relocate
// around it. On failure the vector is untouched.
func (v *Vector[T]) insertGrow(i int, ctor Constructor[T], ctorOwns bool) (*T, error) {
	n := v.grownCap()
	nb, err := mem.NewRawBuffer[T](v.alloc, n)
	if err != nil {
		return nil, fmt.Errorf("vec: grow to %d: %w", n, err)
	}
	ns := nb.Slice()
	slot := &ns[i]
	var zero T
	*slot = zero
	if err := ctor(slot); err != nil {
		nb.Free()
		return nil, fmt.Errorf("vec: construct element %d: %w", i, err)
	}
	os := v.buf.Slice()[:v.len]
	if err := v.traits.transfer(ns[:i], os[:i]); err != nil {
		if ctorOwns {
			v.traits.destroy(slot)
		}
		nb.Free()
		return nil, err
	}
	if err := v.traits.transfer(ns[i+1:v.len+1], os[i:]); err != nil {
		// Only clone relocation fails, so the first half holds clones
		// and the originals are all still live.
		v.traits.destroyRange(ns[:i])
		if ctorOwns {
			v.traits.destroy(slot)
		}
		nb.Free()
		return nil, err
	}
	v.traits.releaseTransferred(os)
	v.buf.Swap(&nb)
	nb.Free()
	v.len++
	return slot, nil
}

// Erase removes element i, shifting later elements left by one.
//
// Only clone-relocating traits can fail. A failure during the shift
// leaves the length unchanged and every slot valid, but slots already
// shifted keep their new values; a failure on the first step leaves the
// vector untouched.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.len {
		panic("vec: erase position out of range")
	}
	s := v.buf.Slice()
	switch v.traits.relocation() {
	case relocMove:
		v.traits.destroy(&s[i])
		for j := i; j < v.len-1; j++ {
			v.traits.Move(&s[j], &s[j+1])
		}
	case relocClone:
		for j := i; j < v.len-1; j++ {
			var c T
			if err := v.traits.cloneInto(&c, &s[j+1]); err != nil {
				return fmt.Errorf("vec: shift element %d: %w", j+1, err)
			}
			v.traits.destroy(&s[j])
			s[j] = c
		}
		v.traits.destroy(&s[v.len-1])
	default:
		v.traits.destroy(&s[i])
		copy(s[i:v.len-1], s[i+1:v.len])
	}
	v.len--
	return nil
}

// PopBack destroys the last element. Panics when empty.
func (v *Vector[T]) PopBack() {
	if v.len == 0 {
		panic("vec: pop on empty vector")
	}
	v.len--
	v.traits.destroy(v.buf.At(v.len))
}

// Resize sets the length to n. Shrinking destroys the tail and never
// fails. Growing reserves exactly n slots and value-constructs the new
// elements; on failure the constructed part is destroyed and the length
// keeps its old value. Panics on negative n.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative length")
	}
	switch {
	case n < v.len:
		v.traits.destroyRange(v.buf.Slice()[n:v.len])
		v.len = n
	case n > v.len:
		if err := v.Reserve(n); err != nil {
			return err
		}
		s := v.buf.Slice()
		for i := v.len; i < n; i++ {
			if err := v.traits.construct(&s[i]); err != nil {
				v.traits.destroyRange(s[v.len:i])
				return fmt.Errorf("vec: construct element %d: %w", i, err)
			}
		}
		v.len = n
	}
	return nil
}

// Clear destroys all elements, keeping capacity for reuse.
func (v *Vector[T]) Clear() {
	v.traits.destroyRange(v.buf.Slice()[:v.len])
	v.len = 0
}

// Free destroys all elements and releases the storage. The vector
// remains usable as an empty vector. Safe to call more than once.
func (v *Vector[T]) Free() {
	v.Clear()
	v.buf.Free()
}

// Swap exchanges contents, traits and allocators with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}
