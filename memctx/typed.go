package memctx

import "unsafe"

// Make returns a zeroed *T stored inside the region. Region memory is not
// scanned by the garbage collector, so T must not contain pointers to memory
// outside the region; plain value types (ints, floats, fixed arrays, structs
// of those) are safe. The pointer is valid until Release.
func Make[T any](c *Context) *T {
	var zero T
	b := c.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice returns a zeroed []T of length n stored inside the region.
// The same pointer-free restriction as Make applies to T.
// Returns nil if n <= 0 or the context is nil or released.
func MakeSlice[T any](c *Context, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := c.Alloc(int(unsafe.Sizeof(zero)) * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
