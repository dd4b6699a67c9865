package mrcp

import "reflect"

//go:generate go tool mockgen -destination ../internal/testutil/mrcpmock/allocator.go -package mrcpmock . Allocator

// Allocator creates a header block for a [HeaderAccessor].
// Implementations are registered per block kind: one for the generic header and
// one per resource type.
type Allocator interface {
	// Allocate returns a new zeroed header block scoped to pool or nil if
	// the block can not be allocated. A typed nil pointer counts as nil.
	Allocate(acc *HeaderAccessor, pool *Pool) any
}

// AllocatorFunc is an adapter to allow the use of ordinary functions as [Allocator].
type AllocatorFunc func(acc *HeaderAccessor, pool *Pool) any

func (fn AllocatorFunc) Allocate(acc *HeaderAccessor, pool *Pool) any { return fn(acc, pool) }

// HeaderAccessor holds a lazily allocated header block.
type HeaderAccessor struct {
	// Data is the header block, nil until allocated.
	Data any
	// Allocator creates the block on first write.
	Allocator Allocator
}

// Allocate returns the header block, allocating it on the first call.
// It returns nil if no allocator is registered, the allocator fails or the pool is destroyed.
// The allocated block is dropped when the pool is destroyed.
func (acc *HeaderAccessor) Allocate(pool *Pool) any {
	if acc == nil {
		return nil
	}
	if acc.Data != nil {
		return acc.Data
	}
	if acc.Allocator == nil || pool.Destroyed() {
		return nil
	}
	data := acc.Allocator.Allocate(acc, pool)
	if isNil(data) {
		return nil
	}
	acc.Data = data
	pool.OnCleanup(func() { acc.Data = nil })
	return data
}

// isNil reports whether v is nil or a nil pointer, map, slice, func or channel boxed in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsAllocated reports whether the header block was allocated.
func (acc *HeaderAccessor) IsAllocated() bool { return acc != nil && acc.Data != nil }

// BlockAllocator returns an [Allocator] that allocates a zeroed *T and
// passes it to init if init is not nil.
func BlockAllocator[T any](init func(hdr *T)) Allocator {
	return AllocatorFunc(func(_ *HeaderAccessor, _ *Pool) any {
		hdr := new(T)
		if init != nil {
			init(hdr)
		}
		return hdr
	})
}
