//go:build darwin || linux

package mem

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// MmapAllocator allocates blocks as anonymous private pages outside the
// Go heap. Block lengths are rounded up to whole pages, and Deallocate
// unmaps immediately, so blocks must be passed back exactly as returned.
type MmapAllocator struct{}

// Allocate maps size bytes, rounded up to the page size. Pages are
// zero-filled by the kernel.
func (MmapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		panic("mem: negative allocation size")
	}
	if size == 0 {
		return nil, nil
	}
	page := os.Getpagesize()
	if size > math.MaxInt-page+1 {
		return nil, fmt.Errorf("mem: mmap %d bytes: %w", size, ErrTooLarge)
	}
	mapped := (size + page - 1) / page * page
	block, err := unix.Mmap(-1, 0, mapped, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mem: mmap %d bytes: %w", mapped, err)
	}
	return block, nil
}

// Deallocate unmaps the block. The pages become inaccessible at once.
func (MmapAllocator) Deallocate(block []byte) {
	if len(block) == 0 {
		return
	}
	if err := unix.Munmap(block); err != nil {
		panic("mem: munmap: " + err.Error())
	}
}
