package memctx

import "errors"

var (
	// ErrInvalidContext indicates a nil or already released context handle.
	ErrInvalidContext = errors.New("memctx: invalid or released context")

	// ErrEmptyPath indicates an empty file path argument.
	ErrEmptyPath = errors.New("memctx: empty file path")

	// ErrEmptyFile indicates the file exists but holds no bytes; an empty
	// file cannot back a file block.
	ErrEmptyFile = errors.New("memctx: file is empty")
)
