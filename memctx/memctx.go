package memctx

// DefaultPageSize is the capacity of an ordinary block. Requests larger than
// one page get a block sized to the next multiple of the page size.
const DefaultPageSize = 4069

// Block is one contiguous backing buffer plus its bookkeeping. Blocks never
// shrink, never move, and are never reused once linked; the chain only grows
// by appending at the tail. The single exception is a file block, which
// ReleaseFile may detach.
type Block struct {
	data     []byte // backing buffer; len(data) is the capacity
	consumed int    // high-water mark, 0 <= consumed <= len(data)
	file     bool   // set for blocks created by OpenFile
}

// Capacity returns the size of the block's backing buffer in bytes.
func (b *Block) Capacity() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Consumed returns the block's high-water mark in bytes.
func (b *Block) Consumed() int {
	if b == nil {
		return 0
	}
	return b.consumed
}

// Free returns the trailing free space available for bump allocation.
func (b *Block) Free() int {
	if b == nil {
		return 0
	}
	return len(b.data) - b.consumed
}

// IsFile reports whether the block carries a file loaded by OpenFile.
func (b *Block) IsFile() bool {
	return b != nil && b.file
}

// Bytes returns the consumed portion of the block's buffer.
// The slice aliases region memory; it is valid until Release.
func (b *Block) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data[:b.consumed]
}

// Context is the caller's handle to a region. It owns the block chain;
// blocks[0] is the head created at construction and the chain grows by
// appending at the tail. A nil or released context fails every operation
// without side effects.
type Context struct {
	blocks   []*Block
	pageSize int
}

// New creates a context with a single head block of DefaultPageSize bytes.
func New() *Context {
	return NewWithPageSize(DefaultPageSize)
}

// NewWithPageSize creates a context whose ordinary blocks hold pageSize
// bytes. If pageSize <= 0, DefaultPageSize is used.
func NewWithPageSize(pageSize int) *Context {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Context{
		blocks:   []*Block{{data: make([]byte, pageSize)}},
		pageSize: pageSize,
	}
}

// Release drops every block and invalidates the handle. All slices returned
// by Alloc, Sprintf and OpenFile become dead. Further operations on the
// context fail the same way they do on a nil handle.
func (c *Context) Release() {
	if c == nil {
		return
	}
	c.blocks = nil
}

// valid reports whether the context can serve allocations.
func (c *Context) valid() bool {
	return c != nil && c.blocks != nil
}
