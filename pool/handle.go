// File: pool/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-worker pool handle with a cached scan offset. Goroutines migrate
// between OS threads, so the thread-derived offset used by bare
// Acquire/Release is recomputed per call. A worker that is pinned, or
// that simply wants a stable offset for its lifetime, creates a Handle
// at setup and goes through it instead.

package pool

import (
	"github.com/momentics/faultpool/api"
	"github.com/momentics/faultpool/internal/concurrency"
)

var _ api.BlockPool = (*Handle)(nil)

// Handle is a lightweight view of a SlotPool with a fixed start index.
// It is cheap enough to create per worker and must not be shared between
// workers whose contention it is meant to separate.
type Handle struct {
	p     *SlotPool
	start int
}

// Handle derives a per-worker handle whose scan offset is computed once,
// from the identity of the OS thread running the caller at setup time.
func (p *SlotPool) Handle() *Handle {
	return &Handle{p: p, start: concurrency.StartIndex(len(p.slots))}
}

// HandleAt derives a handle with an explicit scan offset, for worker
// pools that assign offsets themselves (e.g. worker index spread over
// the slot array). The offset is reduced modulo capacity.
func (p *SlotPool) HandleAt(start int) *Handle {
	if start < 0 {
		start = -start
	}
	return &Handle{p: p, start: start % len(p.slots)}
}

// Acquire is SlotPool.Acquire scanning from the handle's cached offset.
func (h *Handle) Acquire(n int) []byte {
	return h.p.acquireFrom(h.start, n)
}

// Release is SlotPool.Release scanning from the handle's cached offset.
func (h *Handle) Release(b []byte) {
	h.p.releaseFrom(h.start, b)
}

// StartIndex returns the handle's cached scan offset.
func (h *Handle) StartIndex() int { return h.start }

// Pool returns the underlying SlotPool.
func (h *Handle) Pool() *SlotPool { return h.p }
