package mem

import (
	"errors"
	"unsafe"
)

// ErrTooLarge reports an allocation whose byte size overflows int.
var ErrTooLarge = errors.New("mem: allocation size overflows int")

// Allocator hands out raw byte blocks. Blocks are uninitialized unless
// the backend documents otherwise, and must be aligned for any Go type
// (8 bytes).
//
// Allocate may return a block longer than requested, never shorter.
// Allocate(0) returns (nil, nil). A failed Allocate returns no block.
// Deallocate must receive a block exactly as Allocate returned it;
// Deallocate(nil) is a no-op. Negative sizes are a caller bug and panic.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Deallocate(block []byte)
}

// Default is the allocator used when none is configured.
var Default Allocator = HeapAllocator{}

// HeapAllocator allocates from the Go heap. Deallocate is a no-op; the
// collector reclaims blocks once unreferenced.
type HeapAllocator struct{}

// Allocate returns a zeroed block of the given size.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		panic("mem: negative allocation size")
	}
	if size == 0 {
		return nil, nil
	}
	return alignedBlock(size), nil
}

// Deallocate is a no-op.
func (HeapAllocator) Deallocate([]byte) {}

// alignedBlock allocates size bytes backed by a []uint64 so the block
// is 8-byte aligned even when the runtime would place a small []byte
// in the tiny allocator at a weaker alignment.
func alignedBlock(size int) []byte {
	words := (size + 7) / 8
	backing := make([]uint64, words)
	return unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), size)
}
