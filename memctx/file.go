package memctx

import (
	"fmt"
	"unsafe"

	"github.com/vladimirfedorov/memctx/internal/mmfile"
)

// OpenFile reads the file at path fully into a dedicated block appended at
// the tail of the chain and returns the file's bytes. The block is sized to
// the file length plus one terminating NUL and is created permanently full
// (consumed == capacity), so it can never satisfy a later bump allocation;
// it exists solely to carry this one buffer and can be detached again with
// ReleaseFile.
//
// On any failure the context is left exactly as it was: nothing is linked
// and nothing leaks. Opening an empty file fails with ErrEmptyFile.
func (c *Context) OpenFile(path string) ([]byte, error) {
	if !c.valid() {
		return nil, ErrInvalidContext
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("memctx: open %s: %w", path, err)
	}
	defer unmap()
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	b := &Block{data: make([]byte, len(data)+1), file: true}
	n := copy(b.data, data)
	b.consumed = len(b.data)
	c.blocks = append(c.blocks, b)
	return b.data[:n:n], nil
}

// ReleaseFile detaches the file block whose buffer backs buf and frees it,
// leaving every other block and every other returned slice untouched. It is
// a no-op if the context is nil or released, buf is empty, or buf does not
// identify a file block; ordinary blocks can never be released individually.
func (c *Context) ReleaseFile(buf []byte) {
	if !c.valid() || len(buf) == 0 {
		return
	}
	p := unsafe.SliceData(buf)
	for i, b := range c.blocks {
		if b.file && unsafe.SliceData(b.data) == p {
			c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
			return
		}
	}
}
