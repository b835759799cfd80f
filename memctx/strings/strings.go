// Package strings provides a growable byte string backed by a memory
// context.
//
// Like the arrays collaborator it consumes only the context's allocation
// contract: growth allocates a larger region buffer, copies, and abandons
// the old one. The single exception is a string loaded with ReadFile, whose
// backing file block can be handed back with ReleaseFile.
package strings

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"

	"github.com/vladimirfedorov/memctx/memctx"
)

// InitCapacity is the storage capacity of a freshly initialized string.
const InitCapacity = 16

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// String is a growable byte string stored in region memory.
type String struct {
	ctx        *memctx.Context
	buf        []byte // region-backed storage; len(buf) is the capacity
	length     int
	fileBacked bool // storage is a file block created by OpenFile
}

// Substring is a read-only view into another string's storage. It shares the
// region memory of its source and must not outlive the context.
type Substring struct {
	value []byte
}

// Init returns an empty string with InitCapacity bytes of storage.
// Returns nil if ctx is nil or released.
func Init(ctx *memctx.Context) *String {
	return InitWithCapacity(ctx, InitCapacity)
}

// InitWithCapacity returns an empty string with capacity bytes of storage.
// If capacity <= 0, InitCapacity is used. Returns nil if ctx is nil or
// released.
func InitWithCapacity(ctx *memctx.Context, capacity int) *String {
	if capacity <= 0 {
		capacity = InitCapacity
	}
	buf := ctx.Alloc(capacity)
	if buf == nil {
		return nil
	}
	return &String{ctx: ctx, buf: buf}
}

// Make returns a string initialized with a copy of value.
// Returns nil if ctx is nil or released.
func Make(ctx *memctx.Context, value string) *String {
	s := InitWithCapacity(ctx, growCapacity(InitCapacity, len(value)))
	if s == nil {
		return nil
	}
	s.length = copy(s.buf, value)
	return s
}

// Len returns the string's length in bytes.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Cap returns the string's storage capacity in bytes.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// Bytes returns the string's contents as a view into region memory,
// valid until the context is released.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf[:s.length]
}

// String returns a copy of the contents as an ordinary Go string.
func (s *String) String() string {
	return string(s.Bytes())
}

// Append adds value at the end, growing storage as needed, and returns the
// receiver for chaining. Appending to a file-backed string moves it onto
// ordinary region storage; the file block is left behind until release.
func (s *String) Append(value string) *String {
	if s == nil || len(value) == 0 {
		return s
	}
	s.ensure(s.length + len(value))
	s.length += copy(s.buf[s.length:], value)
	return s
}

// AppendBytes adds p at the end, growing storage as needed.
func (s *String) AppendBytes(p []byte) *String {
	if s == nil || len(p) == 0 {
		return s
	}
	s.ensure(s.length + len(p))
	s.length += copy(s.buf[s.length:], p)
	return s
}

// AppendString adds another region string's contents at the end.
func (s *String) AppendString(other *String) *String {
	return s.AppendBytes(other.Bytes())
}

// Trim returns a substring view with leading and trailing whitespace
// removed. The view references the same region storage as the source.
func (s *String) Trim() Substring {
	if s == nil {
		return Substring{}
	}
	return Substring{value: bytes.TrimSpace(s.Bytes())}
}

// Len returns the substring's length in bytes.
func (ss Substring) Len() int {
	return len(ss.value)
}

// Bytes returns the substring's contents; the slice aliases the source
// string's region storage.
func (ss Substring) Bytes() []byte {
	return ss.value
}

// String returns a copy of the substring as an ordinary Go string.
func (ss Substring) String() string {
	return string(ss.value)
}

// ReadFile loads the file at path into a string backed by a dedicated file
// block. UTF-16 input (either endianness, by BOM) is transcoded to UTF-8 and
// a UTF-8 BOM is stripped; in both cases the transcoded copy lives in
// ordinary region storage and the raw file block is released again.
func ReadFile(ctx *memctx.Context, path string) (*String, error) {
	raw, err := ctx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	decoded, transcoded, err := decodeText(raw)
	if err != nil {
		ctx.ReleaseFile(raw)
		return nil, err
	}
	if !transcoded {
		return &String{ctx: ctx, buf: raw, length: len(raw), fileBacked: true}, nil
	}

	buf := ctx.Alloc(len(decoded))
	if buf == nil && len(decoded) > 0 {
		ctx.ReleaseFile(raw)
		return nil, memctx.ErrInvalidContext
	}
	copy(buf, decoded)
	ctx.ReleaseFile(raw) // raw bytes are superseded by the transcoded copy
	return &String{ctx: ctx, buf: buf, length: len(decoded)}, nil
}

// ReleaseFile detaches the file block backing a string created by ReadFile
// and empties the string. No-op for strings on ordinary storage.
func (s *String) ReleaseFile() {
	if s == nil || !s.fileBacked {
		return
	}
	s.ctx.ReleaseFile(s.buf)
	s.buf = nil
	s.length = 0
	s.fileBacked = false
}

// ensure grows storage to hold at least needed bytes. The old buffer is
// abandoned in place, the accepted cost of the region model.
func (s *String) ensure(needed int) {
	if needed <= len(s.buf) {
		return
	}
	buf := s.ctx.Alloc(growCapacity(len(s.buf), needed))
	if buf == nil {
		return
	}
	copy(buf, s.buf[:s.length])
	s.buf = buf
	s.fileBacked = false
}

// growCapacity doubles from the current capacity until needed fits.
func growCapacity(current, needed int) int {
	capacity := current
	if capacity <= 0 {
		capacity = InitCapacity
	}
	for capacity < needed {
		capacity *= 2
	}
	return capacity
}

// decodeText inspects a byte-order mark and transcodes UTF-16 text to UTF-8.
// It reports whether the returned bytes differ from the input.
func decodeText(raw []byte) ([]byte, bool, error) {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}), bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	case bytes.HasPrefix(raw, utf8BOM):
		return raw[len(utf8BOM):], true, nil
	default:
		return raw, false, nil
	}
}
