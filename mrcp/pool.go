package mrcp

import (
	"log/slog"
	"slices"
)

// Pool is a scoped memory region that bounds the lifetime of a message.
// Spans copied with [Pool.Dup] and header blocks allocated through a [HeaderAccessor]
// belong to the pool; once the pool is destroyed they are released and must not be used.
//
// A nil *Pool is valid: allocations are not scoped and cleanups are never run.
// Pool is not safe for concurrent use.
type Pool struct {
	cleanups  []func()
	allocated int
	destroyed bool
}

// NewPool creates a new empty pool.
func NewPool() *Pool { return &Pool{} }

// Dup copies b into the pool. It returns nil for empty input or a destroyed pool.
func (p *Pool) Dup(b []byte) Span {
	if len(b) == 0 || p.Destroyed() {
		return nil
	}
	if p != nil {
		p.allocated += len(b)
	}
	return SpanOf(b)
}

// DupString copies s into the pool. See [Pool.Dup].
func (p *Pool) DupString(s string) Span {
	if len(s) == 0 || p.Destroyed() {
		return nil
	}
	if p != nil {
		p.allocated += len(s)
	}
	return SpanOf(s)
}

// OnCleanup registers fn to be called when the pool is destroyed.
// Cleanups run in reverse registration order.
// Registering on a destroyed pool runs fn immediately.
func (p *Pool) OnCleanup(fn func()) {
	if p == nil || fn == nil {
		return
	}
	if p.destroyed {
		fn()
		return
	}
	p.cleanups = append(p.cleanups, fn)
}

// Destroy releases the pool and runs its cleanups.
// Subsequent calls are no-op.
func (p *Pool) Destroy() {
	if p == nil || p.destroyed {
		return
	}
	p.destroyed = true
	cleanups := p.cleanups
	p.cleanups = nil
	for _, fn := range slices.Backward(cleanups) {
		fn()
	}
	p.allocated = 0
}

func (p *Pool) Destroyed() bool { return p != nil && p.destroyed }

// Allocated returns the number of bytes copied into the pool.
func (p *Pool) Allocated() int {
	if p == nil {
		return 0
	}
	return p.allocated
}

func (p *Pool) LogValue() slog.Value {
	if p == nil {
		return zeroSlogValue
	}
	return slog.GroupValue(
		slog.Int("allocated", p.allocated),
		slog.Int("cleanups", len(p.cleanups)),
		slog.Bool("destroyed", p.destroyed),
	)
}

var zeroSlogValue = slog.Value{}
