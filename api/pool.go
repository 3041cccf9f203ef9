// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Defines the allocation contract a fault path depends on: bounded,
// non-blocking lease/return of fixed-size memory blocks.

package api

// BlockPool hands out temporary leases on pre-allocated fixed-size blocks.
// Implementations must never allocate on the Acquire/Release path and must
// be safe for concurrent use without external locking.
type BlockPool interface {
	// Acquire returns a block of at least n bytes, or whatever the
	// configured FailurePolicy produced if the request cannot be served.
	Acquire(n int) []byte

	// Release returns a previously acquired block to the pool. The slice
	// must be exactly the one returned by Acquire.
	Release(b []byte)
}

// PoolInspector exposes diagnostic views of a pool. These exist for tests
// and defensive checks, not for the hot path.
type PoolInspector interface {
	// OccupiedCount reports the number of currently leased blocks.
	// Not safe to call concurrently with Acquire/Release.
	OccupiedCount() int

	// Owns reports whether addr falls inside any backing block.
	Owns(addr uintptr) bool
}
