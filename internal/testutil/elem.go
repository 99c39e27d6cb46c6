// Package testutil provides instrumented element lifecycles,
// failure-injecting allocators and assertion helpers for container
// tests.
package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// ErrInjected is returned by hooks and allocators asked to fail.
var ErrInjected = errors.New("testutil: injected failure")

// Resource is a pointer-free element type whose lifetime a Tracker
// records. ID 0 means dead or spent; Val carries a test payload.
type Resource struct {
	ID  uint64
	Val int
}

// Tracker manufactures lifetime hooks for Resource and records every
// construction, clone, move and destruction. It detects double
// destruction, destruction of spent slots and use of dead sources.
// Not synchronized.
type Tracker struct {
	// NewFailAt / CloneFailAt name the 1-based attempt that fails
	// with ErrInjected; 0 means never.
	NewFailAt   int
	CloneFailAt int

	ctorAttempts  int
	cloneAttempts int
	ctors         int
	clones        int
	moves         int
	dtors         int

	nextID uint64
	live   map[uint64]struct{}
	faults []string
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[uint64]struct{})}
}

// New is a Traits-shaped constructor hook.
func (tk *Tracker) New(p *Resource) error {
	tk.ctorAttempts++
	if tk.NewFailAt > 0 && tk.ctorAttempts == tk.NewFailAt {
		return ErrInjected
	}
	tk.ctors++
	p.ID = tk.newID()
	return nil
}

// Clone is a Traits-shaped copy hook.
func (tk *Tracker) Clone(dst, src *Resource) error {
	tk.cloneAttempts++
	if tk.CloneFailAt > 0 && tk.cloneAttempts == tk.CloneFailAt {
		return ErrInjected
	}
	tk.checkLive(src.ID, "clone")
	tk.clones++
	dst.ID = tk.newID()
	dst.Val = src.Val
	return nil
}

// Move is a Traits-shaped relocation hook. The source becomes spent.
func (tk *Tracker) Move(dst, src *Resource) {
	tk.checkLive(src.ID, "move")
	tk.moves++
	*dst = *src
	src.ID = 0
}

// Destroy is a Traits-shaped destruction hook.
func (tk *Tracker) Destroy(p *Resource) {
	if p.ID == 0 {
		tk.faults = append(tk.faults, "destroy of spent or dead resource")
		return
	}
	if _, ok := tk.live[p.ID]; !ok {
		tk.faults = append(tk.faults, fmt.Sprintf("double destroy of resource %d", p.ID))
		return
	}
	delete(tk.live, p.ID)
	tk.dtors++
	p.ID = 0
}

// Make returns a live resource carrying val, as if constructed by New.
// Not subject to NewFailAt.
func (tk *Tracker) Make(val int) Resource {
	tk.ctors++
	return Resource{ID: tk.newID(), Val: val}
}

// Live returns the number of resources constructed but not destroyed.
func (tk *Tracker) Live() int { return len(tk.live) }

// Ctors returns the number of successful constructions, Make included.
func (tk *Tracker) Ctors() int { return tk.ctors }

// Clones returns the number of successful clones.
func (tk *Tracker) Clones() int { return tk.clones }

// Moves returns the number of relocations.
func (tk *Tracker) Moves() int { return tk.moves }

// Dtors returns the number of destructions.
func (tk *Tracker) Dtors() int { return tk.dtors }

// Check fails the test if any resource is still live or any lifetime
// fault was recorded.
func (tk *Tracker) Check(t *testing.T) {
	t.Helper()
	for _, f := range tk.faults {
		t.Errorf("lifetime fault: %s", f)
	}
	if n := len(tk.live); n != 0 {
		t.Errorf("leaked resources: %d still live (%d ctors, %d clones, %d dtors)",
			n, tk.ctors, tk.clones, tk.dtors)
	}
}

func (tk *Tracker) newID() uint64 {
	tk.nextID++
	tk.live[tk.nextID] = struct{}{}
	return tk.nextID
}

func (tk *Tracker) checkLive(id uint64, op string) {
	if id == 0 {
		tk.faults = append(tk.faults, op+" of spent resource")
		return
	}
	if _, ok := tk.live[id]; !ok {
		tk.faults = append(tk.faults, fmt.Sprintf("%s of dead resource %d", op, id))
	}
}
