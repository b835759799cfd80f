package memctx

import "unsafe"

// alignment is the platform pointer width. Every allocation is rounded up to
// a multiple of it so returned buffers are pointer-aligned regardless of the
// requested size.
const alignment = int(unsafe.Sizeof(uintptr(0)))

// Alloc returns a zeroed buffer of exactly size bytes backed by the region.
// The buffer stays valid and its contents stable until Release; nothing ever
// moves or compacts it. Returns nil if the context is nil or released, or if
// size <= 0.
//
// The search is first-fit over trailing free space, from the head block in
// creation order. No shortcut such as a last-block cache is kept, so the cost
// is O(number of blocks); a long-lived context trades that for simplicity.
func (c *Context) Alloc(size int) []byte {
	if !c.valid() || size <= 0 {
		return nil
	}
	aligned := alignUp(size)
	for _, b := range c.blocks {
		if b.Free() >= aligned {
			off := b.consumed
			b.consumed += aligned
			return b.data[off : off+size : off+size]
		}
	}
	b := c.grow(aligned)
	return b.data[0:size:size]
}

// grow appends a block able to hold aligned bytes and marks them consumed.
// Small requests get one page; oversized ones get the request rounded up to
// the next multiple of the page size.
func (c *Context) grow(aligned int) *Block {
	capacity := c.pageSize
	if aligned > capacity {
		capacity = roundUp(aligned, c.pageSize)
	}
	b := &Block{data: make([]byte, capacity), consumed: aligned}
	c.blocks = append(c.blocks, b)
	return b
}

// alignUp rounds n up to the next multiple of the pointer width.
func alignUp(n int) int {
	return (n + alignment - 1) &^ (alignment - 1)
}

// roundUp rounds n up to the next multiple of step.
func roundUp(n, step int) int {
	return (n + step - 1) / step * step
}
