// File: api/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Failure policy hooks for block pools. A pool never signals allocation
// failures through return values of its own: the calling context is an
// error-propagation path that may have no safe way to handle a
// conventional error result, so each failure class is delegated to a
// replaceable hook instead.

package api

// FailurePolicy decides what happens when a pool cannot serve a request.
// The default implementation terminates the process; integrators may
// supply fallback memory or tolerate leaks by injecting their own policy
// at pool construction.
type FailurePolicy interface {
	// OnOversized is invoked when a request exceeds the pool's fixed
	// block size. Whatever it returns is handed back to the caller.
	OnOversized(requested int) []byte

	// OnExhausted is invoked when every slot is leased. Whatever it
	// returns is handed back to the caller.
	OnExhausted(requested int) []byte

	// OnLeak is invoked when a released address does not match any
	// backing block: a foreign pointer, a double release, or a block
	// from another pool instance.
	OnLeak(addr uintptr)
}
