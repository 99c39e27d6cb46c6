package vec

import (
	"errors"
	"fmt"
)

// ErrNotCloneable reports a copying operation on element traits that
// provide no Clone and are not trivially copyable.
var ErrNotCloneable = errors.New("vec: element traits provide no clone")

// Constructor builds an element in place. The slot is zeroed before the
// call; returning an error means the slot holds no element.
type Constructor[T any] func(*T) error

// Traits supply the lifetime hooks for an element type. The zero value
// describes a trivial type: zero-value construction, bitwise copies,
// nothing to destroy.
//
// When elements change slots the vector relocates them with Move if
// provided, otherwise with Clone followed by destruction of the source,
// otherwise as plain bits.
type Traits[T any] struct {
	// New value-constructs a slot. nil means the zero value.
	New Constructor[T]
	// Clone copies *src into the zeroed slot *dst. nil alongside a
	// Move or Destroy hook marks the type non-copyable; nil on an
	// otherwise trivial type means bitwise copies are true copies.
	Clone func(dst, src *T) error
	// Move relocates *src into the uninitialized slot *dst. It must
	// fully assign *dst, must not fail, and leaves *src spent. Spent
	// slots are never destroyed.
	Move func(dst, src *T)
	// Destroy releases an element's resources. nil means nothing to
	// release.
	Destroy func(*T)
}

type relocKind int

const (
	relocBitwise relocKind = iota
	relocMove
	relocClone
)

func (tr Traits[T]) relocation() relocKind {
	switch {
	case tr.Move != nil:
		return relocMove
	case tr.Clone != nil:
		return relocClone
	default:
		return relocBitwise
	}
}

// copyable reports whether elements can be duplicated: either Clone is
// provided or a bitwise copy is a true copy.
func (tr Traits[T]) copyable() bool {
	return tr.Clone != nil || (tr.Move == nil && tr.Destroy == nil)
}

// construct value-constructs the slot.
func (tr Traits[T]) construct(p *T) error {
	var zero T
	*p = zero
	if tr.New == nil {
		return nil
	}
	return tr.New(p)
}

// cloneInto copies *src into the uninitialized slot *dst. Callers must
// have checked copyable; tr.Clone is non-nil here.
func (tr Traits[T]) cloneInto(dst, src *T) error {
	var zero T
	*dst = zero
	return tr.Clone(dst, src)
}

func (tr Traits[T]) destroy(p *T) {
	if tr.Destroy != nil {
		tr.Destroy(p)
	}
}

func (tr Traits[T]) destroyRange(s []T) {
	if tr.Destroy == nil {
		return
	}
	for i := range s {
		tr.Destroy(&s[i])
	}
}

// transfer relocates src[i] into the uninitialized dst[i] for every i.
// On failure (possible only for clone relocation) the partially built
// dst is destroyed and the sources are untouched. On success the
// sources of a clone relocation are still live; the caller finishes
// with releaseTransferred once no rollback can be needed anymore.
func (tr Traits[T]) transfer(dst, src []T) error {
	switch tr.relocation() {
	case relocMove:
		for i := range src {
			tr.Move(&dst[i], &src[i])
		}
	case relocClone:
		for i := range src {
			if err := tr.cloneInto(&dst[i], &src[i]); err != nil {
				tr.destroyRange(dst[:i])
				return fmt.Errorf("vec: relocate element %d: %w", i, err)
			}
		}
	default:
		copy(dst, src)
	}
	return nil
}

// releaseTransferred destroys the sources of a completed clone
// relocation. Moved or bitwise-relocated sources are already spent.
func (tr Traits[T]) releaseTransferred(src []T) {
	if tr.relocation() == relocClone {
		tr.destroyRange(src)
	}
}

// cloneRange fills the uninitialized dst with copies of src, rolling
// back its own partial work on failure. Callers must have checked
// copyable.
func (tr Traits[T]) cloneRange(dst, src []T) error {
	if tr.Clone == nil {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := tr.cloneInto(&dst[i], &src[i]); err != nil {
			tr.destroyRange(dst[:i])
			return fmt.Errorf("vec: clone element %d: %w", i, err)
		}
	}
	return nil
}
