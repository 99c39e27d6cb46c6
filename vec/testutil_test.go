package vec

import (
	"testing"

	"github.com/cwbudde/algo-vec/internal/testutil"
)

// Traits assemblies over a Tracker. fullTraits relocates by Move,
// cloneTraits by Clone (the fallible path), moveTraits marks the type
// non-copyable.

func fullTraits(tk *testutil.Tracker) Traits[testutil.Resource] {
	return Traits[testutil.Resource]{
		New:     tk.New,
		Clone:   tk.Clone,
		Move:    tk.Move,
		Destroy: tk.Destroy,
	}
}

func cloneTraits(tk *testutil.Tracker) Traits[testutil.Resource] {
	return Traits[testutil.Resource]{
		New:     tk.New,
		Clone:   tk.Clone,
		Destroy: tk.Destroy,
	}
}

func moveTraits(tk *testutil.Tracker) Traits[testutil.Resource] {
	return Traits[testutil.Resource]{
		New:     tk.New,
		Move:    tk.Move,
		Destroy: tk.Destroy,
	}
}

// mkCtor returns a constructor that builds a tracked resource carrying
// val.
func mkCtor(tk *testutil.Tracker, val int) Constructor[testutil.Resource] {
	return func(p *testutil.Resource) error {
		if err := tk.New(p); err != nil {
			return err
		}
		p.Val = val
		return nil
	}
}

// fillResources appends resources with Vals val0, val0+10, ... so tests
// can tell elements apart. The vector must have spare capacity when a
// test needs the clone counters untouched.
func fillResources(t *testing.T, v *Vector[testutil.Resource], tk *testutil.Tracker, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := v.EmplaceBack(mkCtor(tk, i*10)); err != nil {
			t.Fatalf("EmplaceBack(%d) failed: %v", i, err)
		}
	}
}

func vals(v *Vector[testutil.Resource]) []int {
	out := make([]int, v.Len())
	for i, r := range v.Slice() {
		out[i] = r.Val
	}
	return out
}

func requireVals(t *testing.T, v *Vector[testutil.Resource], want ...int) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	for i, r := range v.Slice() {
		if r.Val != want[i] {
			t.Fatalf("element %d: Val = %d, want %d (all: %v)", i, r.Val, want[i], vals(v))
		}
	}
}

func requireInts(t *testing.T, v *Vector[int], want ...int) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	for i, got := range v.Slice() {
		if got != want[i] {
			t.Fatalf("element %d: got %d, want %d (all: %v)", i, got, want[i], v.Slice())
		}
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"4K", 4096},
	{"64K", 65536},
}
