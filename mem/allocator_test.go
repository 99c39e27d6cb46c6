package mem

import (
	"testing"
	"unsafe"
)

func TestHeapAllocatorZeroed(t *testing.T) {
	for _, size := range []int{1, 7, 64, 1000} {
		block, err := HeapAllocator{}.Allocate(size)
		if err != nil {
			t.Fatalf("Allocate(%d) failed: %v", size, err)
		}
		if len(block) != size {
			t.Fatalf("len(block) = %d, want %d", len(block), size)
		}
		for i, b := range block {
			if b != 0 {
				t.Fatalf("block[%d] = %d, want 0", i, b)
			}
		}
		HeapAllocator{}.Deallocate(block)
	}
}

func TestHeapAllocatorZeroSize(t *testing.T) {
	block, err := HeapAllocator{}.Allocate(0)
	if err != nil {
		t.Fatalf("Allocate(0) failed: %v", err)
	}
	if block != nil {
		t.Fatalf("Allocate(0) = %v, want nil", block)
	}
}

func TestHeapAllocatorNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Allocate should panic on negative size")
		}
	}()
	HeapAllocator{}.Allocate(-1)
}

func TestHeapAllocatorAligned(t *testing.T) {
	// Small blocks must still satisfy the strictest Go alignment.
	for size := 1; size <= 32; size++ {
		block, err := HeapAllocator{}.Allocate(size)
		if err != nil {
			t.Fatalf("Allocate(%d) failed: %v", size, err)
		}
		if addr := uintptr(unsafe.Pointer(&block[0])); addr%8 != 0 {
			t.Fatalf("block of %d bytes at %#x is not 8-byte aligned", size, addr)
		}
	}
}
