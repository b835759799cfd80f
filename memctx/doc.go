// Package memctx implements a region-based (arena) memory context.
//
// # Overview
//
// A Context owns an ordered chain of blocks. Callers allocate many small
// buffers against the context and release everything in one call, instead of
// tracking individual lifetimes. The model targets transient object graphs
// (strings, growable arrays, parse trees) whose lifetimes are tied to one
// logical operation.
//
//	ctx := memctx.New()
//	defer ctx.Release()
//
//	buf := ctx.Alloc(256)          // bump allocation, pointer-aligned
//	msg := ctx.Sprintf("id=%d", 7) // formatted text backed by the region
//	data, err := ctx.OpenFile(path) // whole file in a dedicated block
//
// # Allocation strategy
//
// Alloc rounds the request up to the platform pointer width and searches the
// block chain from the head; the first block with enough trailing free space
// receives the allocation. When no block fits, a new block is appended at the
// tail: one page (DefaultPageSize) for small requests, or the request rounded
// up to a multiple of the page size for oversized ones. Nothing inside a
// block is ever reclaimed individually, so the search looks at trailing free
// space only and costs O(number of blocks).
//
// Every returned slice stays valid and its contents stable until Release.
// Space superseded by a collaborator's resize-and-copy stays consumed until
// the whole context is released; that is the region tradeoff, not a leak.
//
// # File blocks
//
// OpenFile ingests a file into a dedicated, permanently full block at the
// tail of the chain. It is the one exception to "free all at once":
// ReleaseFile detaches exactly that block while the rest of the region lives
// on.
//
// # Concurrency
//
// A Context is exclusively owned by whoever holds it. There is no internal
// locking; callers sharing a context across goroutines must serialize access
// themselves.
package memctx
