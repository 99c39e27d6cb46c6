package vec

import (
	"fmt"

	"github.com/cwbudde/algo-vec/mem"
)

// Clone returns an independent copy with capacity equal to Len(). Fails
// with ErrNotCloneable when the traits cannot duplicate elements.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.traits.copyable() {
		return nil, ErrNotCloneable
	}
	nb, err := mem.NewRawBuffer[T](v.alloc, v.len)
	if err != nil {
		return nil, fmt.Errorf("vec: clone: %w", err)
	}
	if err := v.traits.cloneRange(nb.Slice()[:v.len], v.buf.Slice()[:v.len]); err != nil {
		nb.Free()
		return nil, err
	}
	return &Vector[T]{buf: nb, len: v.len, traits: v.traits, alloc: v.alloc}, nil
}

// CopyFrom makes v an element-wise copy of src, which must share v's
// element semantics. With enough capacity the buffer is reused: the
// common prefix is clone-assigned in place and the tail constructed or
// destroyed to match; a failure mid-way leaves the length unchanged and
// every slot valid, with the prefix already assigned. Without enough
// capacity the copy is built in a fresh buffer first, leaving v
// untouched on failure. Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if !v.traits.copyable() {
		return ErrNotCloneable
	}
	ss := src.buf.Slice()[:src.len]
	if src.len > v.buf.Cap() {
		nb, err := mem.NewRawBuffer[T](v.alloc, src.len)
		if err != nil {
			return fmt.Errorf("vec: copy: %w", err)
		}
		if err := v.traits.cloneRange(nb.Slice()[:src.len], ss); err != nil {
			nb.Free()
			return err
		}
		v.Clear()
		v.buf.Swap(&nb)
		nb.Free()
		v.len = src.len
		return nil
	}
	vs := v.buf.Slice()
	n := min(v.len, src.len)
	if v.traits.Clone == nil {
		copy(vs[:n], ss[:n])
	} else {
		for i := 0; i < n; i++ {
			// Clone first so a failure never leaves a dead slot
			// inside the live range.
			var c T
			if err := v.traits.cloneInto(&c, &ss[i]); err != nil {
				return fmt.Errorf("vec: copy element %d: %w", i, err)
			}
			v.traits.destroy(&vs[i])
			vs[i] = c
		}
	}
	switch {
	case src.len < v.len:
		v.traits.destroyRange(vs[src.len:v.len])
	case src.len > v.len:
		if err := v.traits.cloneRange(vs[v.len:src.len], ss[v.len:]); err != nil {
			return err
		}
	}
	v.len = src.len
	return nil
}

// MoveFrom takes src's elements in O(1), destroying v's own first. src
// must share v's element semantics and is left empty but usable,
// keeping its allocator and traits. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Free()
	v.buf.Swap(&src.buf)
	v.len = src.len
	src.len = 0
}
