// Package mem provides raw, uninitialized element storage for container
// types. It defines a minimal Allocator contract with interchangeable
// backends (Go heap, pooled size classes, anonymous mmap pages) and a
// generic RawBuffer that reinterprets one allocation as typed slots.
// RawBuffer manages storage only; the owner is responsible for the
// lifetime of whatever it keeps in the slots.
package mem
