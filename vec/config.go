package vec

import "github.com/cwbudde/algo-vec/mem"

// Config bundles the optional collaborators of a vector. The zero value
// selects the default allocator, trivial element semantics and no
// reserved capacity.
type Config[T any] struct {
	// Allocator provides raw storage; nil means mem.Default.
	Allocator mem.Allocator
	// Traits supply the element lifetime hooks.
	Traits Traits[T]
	// Capacity reserves at least this many slots up front.
	Capacity int
}

// applyConfig merges the optional trailing config; at most one is
// honored.
func applyConfig[T any](cfg []Config[T]) Config[T] {
	if len(cfg) == 0 {
		return Config[T]{}
	}
	c := cfg[0]
	if c.Capacity < 0 {
		c.Capacity = 0
	}
	return c
}
