package mem

// CountingAllocator wraps another allocator and records usage. Like the
// containers built on top of this package it is not synchronized.
type CountingAllocator struct {
	inner Allocator

	allocs int
	frees  int
	inUse  int
	peak   int
}

// NewCountingAllocator wraps inner; nil means Default.
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = Default
	}
	return &CountingAllocator{inner: inner}
}

func (c *CountingAllocator) Allocate(size int) ([]byte, error) {
	block, err := c.inner.Allocate(size)
	if err != nil {
		return nil, err
	}
	if block != nil {
		c.allocs++
		c.inUse += len(block)
		if c.inUse > c.peak {
			c.peak = c.inUse
		}
	}
	return block, nil
}

func (c *CountingAllocator) Deallocate(block []byte) {
	if block != nil {
		c.frees++
		c.inUse -= len(block)
	}
	c.inner.Deallocate(block)
}

// Allocs returns the number of blocks handed out.
func (c *CountingAllocator) Allocs() int { return c.allocs }

// Frees returns the number of blocks returned.
func (c *CountingAllocator) Frees() int { return c.frees }

// InUse returns the bytes currently held by callers.
func (c *CountingAllocator) InUse() int { return c.inUse }

// Peak returns the highest InUse value observed.
func (c *CountingAllocator) Peak() int { return c.peak }
