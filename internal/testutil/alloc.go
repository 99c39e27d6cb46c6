package testutil

import (
	"testing"

	"github.com/cwbudde/algo-vec/mem"
)

// FlakyAllocator delegates to another allocator and fails the FailAt-th
// Allocate call (1-based) with ErrInjected; 0 means never fail.
type FlakyAllocator struct {
	Inner  mem.Allocator // nil means mem.Default
	FailAt int

	calls int
}

func (f *FlakyAllocator) Allocate(size int) ([]byte, error) {
	f.calls++
	if f.FailAt > 0 && f.calls == f.FailAt {
		return nil, ErrInjected
	}
	return f.inner().Allocate(size)
}

func (f *FlakyAllocator) Deallocate(block []byte) {
	f.inner().Deallocate(block)
}

// Calls returns the number of Allocate attempts, failed ones included.
func (f *FlakyAllocator) Calls() int { return f.calls }

func (f *FlakyAllocator) inner() mem.Allocator {
	if f.Inner == nil {
		return mem.Default
	}
	return f.Inner
}

// CheckNoLeaks fails the test when the counting allocator still has
// bytes outstanding.
func CheckNoLeaks(t *testing.T, ca *mem.CountingAllocator) {
	t.Helper()
	if ca.InUse() != 0 {
		t.Errorf("allocator leak: %d bytes in use (%d allocs, %d frees)",
			ca.InUse(), ca.Allocs(), ca.Frees())
	}
}
