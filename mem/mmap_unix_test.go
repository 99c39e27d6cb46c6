//go:build darwin || linux

package mem

import (
	"errors"
	"math"
	"os"
	"testing"
)

func TestMmapAllocatorPageRounded(t *testing.T) {
	page := os.Getpagesize()
	block, err := MmapAllocator{}.Allocate(100)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if len(block) < 100 || len(block)%page != 0 {
		t.Fatalf("len(block) = %d, want a multiple of the page size >= 100", len(block))
	}
	MmapAllocator{}.Deallocate(block)
}

func TestMmapAllocatorZeroFilled(t *testing.T) {
	block, err := MmapAllocator{}.Allocate(4096)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	for i, b := range block {
		if b != 0 {
			t.Fatalf("block[%d] = %d, want 0", i, b)
		}
	}
	block[0] = 0xAB
	block[len(block)-1] = 0xCD
	if block[0] != 0xAB || block[len(block)-1] != 0xCD {
		t.Fatal("mapped pages are not writable")
	}
	MmapAllocator{}.Deallocate(block)
}

func TestMmapAllocatorZeroSize(t *testing.T) {
	block, err := MmapAllocator{}.Allocate(0)
	if err != nil || block != nil {
		t.Fatalf("Allocate(0) = %v, %v, want nil, nil", block, err)
	}
	MmapAllocator{}.Deallocate(nil)
}

func TestMmapAllocatorTooLarge(t *testing.T) {
	_, err := MmapAllocator{}.Allocate(math.MaxInt)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Allocate error = %v, want ErrTooLarge", err)
	}
}

func TestMmapRawBufferRoundTrip(t *testing.T) {
	// The buffer tracks requested slots while the mapping spans whole
	// pages; Free must hand the mapping back intact.
	b, err := NewRawBuffer[float64](MmapAllocator{}, 16)
	if err != nil {
		t.Fatalf("NewRawBuffer failed: %v", err)
	}
	if b.Cap() != 16 {
		t.Fatalf("Cap() = %d, want 16", b.Cap())
	}
	s := b.Slice()
	if len(s) != 16 {
		t.Fatalf("len(Slice()) = %d, want 16", len(s))
	}
	for i := range s {
		s[i] = float64(i) * 1.5
	}
	for i := range s {
		if s[i] != float64(i)*1.5 {
			t.Fatalf("Slice()[%d] = %v, want %v", i, s[i], float64(i)*1.5)
		}
	}
	b.Free()
}
