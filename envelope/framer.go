// File: envelope/framer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Header framing over pool blocks. A runtime that propagates error
// objects typically reserves a fixed-size bookkeeping header in front of
// the payload it exposes to callers. Framer owns that translation: it
// sizes requests to cover the header, zeroes the header region on every
// allocation, and recovers the block base from a bare payload address on
// free. The header size is a Framer parameter, so collaborators with
// different header layouts can share one pool.

package envelope

import (
	"unsafe"

	"github.com/momentics/faultpool/api"
	"github.com/momentics/faultpool/pool"
)

// Framer frames fixed-header payloads over a slot pool.
type Framer struct {
	pool       *pool.SlotPool
	headerSize int
}

// New creates a Framer reserving headerSize bytes in front of every
// payload. headerSize must be non-negative and leave room for at least
// one payload byte in each block.
func New(p *pool.SlotPool, headerSize int) (*Framer, error) {
	if p == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "framer requires a pool")
	}
	if headerSize < 0 || headerSize >= p.BlockSize() {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "header size must fit inside a block").
			WithContext("headerSize", headerSize).
			WithContext("blockSize", p.BlockSize())
	}
	return &Framer{pool: p, headerSize: headerSize}, nil
}

// HeaderSize returns the reserved header size in bytes.
func (f *Framer) HeaderSize() int { return f.headerSize }

// AllocPayload leases a block sized for the header plus n payload bytes,
// zeroes the header region and returns the payload view. Blocks are
// reused without scrubbing, so the header must be cleared on every
// allocation, not just the first.
func (f *Framer) AllocPayload(n int) []byte {
	b := f.pool.Acquire(f.headerSize + n)
	if b == nil {
		return nil
	}
	clear(b[:f.headerSize])
	return b[f.headerSize:]
}

// FreePayload releases the block backing a payload previously returned
// by AllocPayload. Passing any other slice reaches the pool's leak hook.
func (f *Framer) FreePayload(payload []byte) {
	if len(payload) == 0 {
		f.pool.Release(nil)
		return
	}
	base := uintptr(unsafe.Pointer(&payload[0])) - uintptr(f.headerSize)
	f.pool.ReleaseAddr(base)
}

// AllocBlock leases a block holding only a zeroed header, for bookkeeping
// records that carry no payload. Release the returned slice with
// FreeBlock.
func (f *Framer) AllocBlock() []byte {
	b := f.pool.Acquire(f.headerSize)
	if b == nil {
		return nil
	}
	clear(b[:f.headerSize])
	return b
}

// FreeBlock releases a block previously returned by AllocBlock.
func (f *Framer) FreeBlock(b []byte) {
	f.pool.Release(b)
}

// Owns reports whether payload points into a block of the underlying
// pool. Accepts the payload address as handed out by AllocPayload; the
// header offset keeps it inside the block, so the pool's interior-pointer
// test applies directly.
func (f *Framer) Owns(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	return f.pool.Owns(uintptr(unsafe.Pointer(&payload[0])))
}
