// Package arrays provides a growable array backed by a memory context.
//
// The array consumes only the context's allocation contract: when it outgrows
// its storage it allocates a larger region buffer, copies, and abandons the
// old one (dead space is reclaimed at context release). Individual
// allocations are never freed.
//
// Storage lives in region memory, which the garbage collector does not scan;
// element types must not contain pointers to memory outside the region.
package arrays

import "github.com/vladimirfedorov/memctx/memctx"

// InitCapacity is the storage capacity of a freshly initialized array.
const InitCapacity = 4

// Comparator reports whether an item matches.
type Comparator[T any] func(item T) bool

// Action is applied to an item during traversal.
type Action[T any] func(item T)

// Array is a growable sequence of T backed by a memory context.
type Array[T any] struct {
	ctx    *memctx.Context
	items  []T // region-backed storage; len(items) is the capacity
	length int
}

// Init returns an empty array with InitCapacity slots of storage.
// Returns nil if ctx is nil or released.
func Init[T any](ctx *memctx.Context) *Array[T] {
	return InitWithCapacity[T](ctx, InitCapacity)
}

// InitWithCapacity returns an empty array with capacity slots of storage.
// If capacity <= 0, InitCapacity is used. Returns nil if ctx is nil or
// released.
func InitWithCapacity[T any](ctx *memctx.Context, capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = InitCapacity
	}
	items := memctx.MakeSlice[T](ctx, capacity)
	if items == nil {
		return nil
	}
	return &Array[T]{ctx: ctx, items: items}
}

// Len returns the number of items in the array.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the array's current storage capacity in items.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Clear removes every item. Storage is kept; the region model has nothing to
// give back anyway.
func (a *Array[T]) Clear() {
	if a == nil {
		return
	}
	var zero T
	for i := 0; i < a.length; i++ {
		a.items[i] = zero
	}
	a.length = 0
}

// Append adds item at the end, growing storage when full, and returns the
// new length. Returns 0 if the array is nil.
func (a *Array[T]) Append(item T) int {
	if a == nil {
		return 0
	}
	if a.length == len(a.items) {
		a.resize(len(a.items) * 2)
	}
	a.items[a.length] = item
	a.length++
	return a.length
}

// InsertAt inserts item before index, shifting later items right.
// index == Len() appends. Out-of-range indices are ignored.
func (a *Array[T]) InsertAt(item T, index int) {
	if a == nil || index < 0 || index > a.length {
		return
	}
	if a.length == len(a.items) {
		a.resize(len(a.items) * 2)
	}
	copy(a.items[index+1:a.length+1], a.items[index:a.length])
	a.items[index] = item
	a.length++
}

// RemoveAt removes the item at index, shifting later items left.
// Out-of-range indices are ignored.
func (a *Array[T]) RemoveAt(index int) {
	if a == nil || index < 0 || index >= a.length {
		return
	}
	copy(a.items[index:], a.items[index+1:a.length])
	a.length--
	var zero T
	a.items[a.length] = zero
}

// ItemAt returns the item at index and whether the index was in range.
func (a *Array[T]) ItemAt(index int) (T, bool) {
	var zero T
	if a == nil || index < 0 || index >= a.length {
		return zero, false
	}
	return a.items[index], true
}

// FirstIndex returns the index of the first item matching cmp, or -1.
func (a *Array[T]) FirstIndex(cmp Comparator[T]) int {
	if a == nil || cmp == nil {
		return -1
	}
	for i := 0; i < a.length; i++ {
		if cmp(a.items[i]) {
			return i
		}
	}
	return -1
}

// Match applies action to every item matching cmp, in order.
func (a *Array[T]) Match(cmp Comparator[T], action Action[T]) {
	if a == nil || cmp == nil || action == nil {
		return
	}
	for i := 0; i < a.length; i++ {
		if cmp(a.items[i]) {
			action(a.items[i])
		}
	}
}

// ForEach applies action to every item, in order.
func (a *Array[T]) ForEach(action Action[T]) {
	if a == nil || action == nil {
		return
	}
	for i := 0; i < a.length; i++ {
		action(a.items[i])
	}
}

// Remove deletes every item matching cmp, preserving the order of the rest.
func (a *Array[T]) Remove(cmp Comparator[T]) {
	if a == nil || cmp == nil {
		return
	}
	kept := 0
	for i := 0; i < a.length; i++ {
		if !cmp(a.items[i]) {
			a.items[kept] = a.items[i]
			kept++
		}
	}
	var zero T
	for i := kept; i < a.length; i++ {
		a.items[i] = zero
	}
	a.length = kept
}

// resize moves the array onto fresh storage of the given capacity. The old
// storage is abandoned in place, the accepted cost of the region model.
func (a *Array[T]) resize(capacity int) {
	if capacity <= len(a.items) {
		return
	}
	items := memctx.MakeSlice[T](a.ctx, capacity)
	if items == nil {
		return
	}
	copy(items, a.items[:a.length])
	a.items = items
}
