package memctx

import (
	"fmt"
	"strings"
	"unsafe"
)

// BlockCount returns the length of the block chain, 0 for a nil or released
// context.
func (c *Context) BlockCount() int {
	if !c.valid() {
		return 0
	}
	return len(c.blocks)
}

// BlockAt returns the block at index in creation order. Negative indices
// count from the tail (-1 is the last block), mirroring array-style
// indexing. Returns nil for any index outside [-count, count-1] or for a
// nil or released context.
func (c *Context) BlockAt(index int) *Block {
	if !c.valid() {
		return nil
	}
	n := len(c.blocks)
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return nil
	}
	return c.blocks[index]
}

// Describe returns a human-readable dump of the chain, one line per block
// with the record address, capacity, consumed bytes, data pointer and the
// next record's address (0x0 for the last block). The string is ordinary Go
// memory, independent of the region; it stays valid after Release.
func (c *Context) Describe() string {
	if !c.valid() {
		return ""
	}
	var sb strings.Builder
	for i, b := range c.blocks {
		var next *Block
		if i+1 < len(c.blocks) {
			next = c.blocks[i+1]
		}
		fmt.Fprintf(&sb, "%p capacity: %d consumed: %d data: %p next: %p\n",
			b, len(b.data), b.consumed, unsafe.SliceData(b.data), next)
	}
	return sb.String()
}
