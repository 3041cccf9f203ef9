// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake failure policy implementations for testing.

package fake

import (
	"sync/atomic"

	"github.com/momentics/faultpool/api"
)

// Ensure compliance with api.FailurePolicy.
var _ api.FailurePolicy = (*Policy)(nil)

// Policy records every failure hook invocation instead of terminating.
// Spare, if set, is returned from the allocation hooks so tests can
// exercise policies that supply fallback memory.
type Policy struct {
	oversized atomic.Int64
	exhausted atomic.Int64
	leaks     atomic.Int64

	LastRequested atomic.Int64
	LastLeakAddr  atomic.Uintptr

	Spare []byte
}

// NewPolicy creates a recording policy that returns nil from every hook.
func NewPolicy() *Policy {
	return &Policy{}
}

// OnOversized records the call and returns Spare.
func (p *Policy) OnOversized(requested int) []byte {
	p.oversized.Add(1)
	p.LastRequested.Store(int64(requested))
	return p.Spare
}

// OnExhausted records the call and returns Spare.
func (p *Policy) OnExhausted(requested int) []byte {
	p.exhausted.Add(1)
	p.LastRequested.Store(int64(requested))
	return p.Spare
}

// OnLeak records the call and the offending address.
func (p *Policy) OnLeak(addr uintptr) {
	p.leaks.Add(1)
	p.LastLeakAddr.Store(addr)
}

// OversizedCalls returns how many times OnOversized ran.
func (p *Policy) OversizedCalls() int { return int(p.oversized.Load()) }

// ExhaustedCalls returns how many times OnExhausted ran.
func (p *Policy) ExhaustedCalls() int { return int(p.exhausted.Load()) }

// LeakCalls returns how many times OnLeak ran.
func (p *Policy) LeakCalls() int { return int(p.leaks.Load()) }
