package memctx

import "fmt"

// Sprintf formats text using the region as backing store. The returned
// buffer holds the formatted text followed by one NUL terminator, so its
// length is the text length plus one; its lifetime is the context's.
// Returns nil if the context is nil or released.
func (c *Context) Sprintf(format string, args ...any) []byte {
	if !c.valid() {
		return nil
	}
	s := fmt.Sprintf(format, args...)
	buf := c.Alloc(len(s) + 1)
	if buf == nil {
		return nil
	}
	copy(buf, s)
	buf[len(s)] = 0
	return buf
}
