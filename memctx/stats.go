package memctx

// Consumed returns the total number of bytes consumed across all blocks,
// including alignment padding and space abandoned by collaborator resizes.
func (c *Context) Consumed() int {
	if !c.valid() {
		return 0
	}
	sum := 0
	for _, b := range c.blocks {
		sum += b.consumed
	}
	return sum
}

// Capacity returns the total capacity of all blocks in bytes.
func (c *Context) Capacity() int {
	if !c.valid() {
		return 0
	}
	sum := 0
	for _, b := range c.blocks {
		sum += len(b.data)
	}
	return sum
}

// Utilization returns the ratio of consumed bytes to total capacity,
// 0.0 when the context has no capacity.
func (c *Context) Utilization() float64 {
	capacity := c.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(c.Consumed()) / float64(capacity)
}

// PageSize returns the ordinary block capacity for this context.
func (c *Context) PageSize() int {
	if c == nil {
		return 0
	}
	return c.pageSize
}

// Stats is a snapshot of a context's chain.
type Stats struct {
	Blocks      int     // blocks in the chain
	FileBlocks  int     // blocks carrying OpenFile buffers
	Capacity    int     // total capacity in bytes
	Consumed    int     // total consumed bytes
	PageSize    int     // ordinary block capacity
	Utilization float64 // consumed / capacity, 0.0-1.0
}

// Stats returns a snapshot of the context's chain.
func (c *Context) Stats() Stats {
	s := Stats{
		Blocks:      c.BlockCount(),
		Capacity:    c.Capacity(),
		Consumed:    c.Consumed(),
		PageSize:    c.PageSize(),
		Utilization: c.Utilization(),
	}
	if c.valid() {
		for _, b := range c.blocks {
			if b.file {
				s.FileBlocks++
			}
		}
	}
	return s
}
