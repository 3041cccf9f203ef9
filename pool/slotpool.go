// File: pool/slotpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core bounded slot pool. One atomic flag per slot is the only
// synchronization primitive: a slot is leased by the thread that flips
// its flag free->leased in a single compare-and-swap, and no lock wraps
// the scan loop. Backing blocks are allocated once at construction and
// never move, which is what makes Acquire/Release safe to call from
// inside an error-propagation path where further heap allocation is
// not an option.

package pool

import (
	"log"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/faultpool/api"
	"github.com/momentics/faultpool/internal/concurrency"
)

// Ensure compile-time interface compliance.
var (
	_ api.BlockPool     = (*SlotPool)(nil)
	_ api.PoolInspector = (*SlotPool)(nil)
)

// slot pairs one occupancy flag with one backing block. The block slice
// and base address are written once at construction and read without
// synchronization afterwards; the flag alone arbitrates ownership.
type slot struct {
	occupied atomic.Bool
	block    []byte
	base     uintptr
	_        [24]byte // Pad to one 64-byte cache line on 64-bit targets
}

// SlotPool is a fixed-capacity pool of fixed-size aligned memory blocks.
// Construct exactly one instance per capacity budget at process startup
// and inject it into every component that allocates on the fault path.
type SlotPool struct {
	slots     []slot
	blockSize int
	alignment int
	policy    api.FailurePolicy
	debug     bool
}

// New constructs a SlotPool from cfg. A nil cfg selects DefaultConfig.
// All backing blocks are allocated here, up front; the pool performs no
// allocation after New returns.
func New(cfg *Config) (*SlotPool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	align := cfg.Alignment
	if align == 0 {
		align = defaultAlignment()
	}
	policy := cfg.Policy
	if policy == nil {
		policy = TerminationPolicy{}
	}
	p := &SlotPool{
		slots:     make([]slot, cfg.Capacity),
		blockSize: cfg.BlockSize,
		alignment: align,
		policy:    policy,
		debug:     cfg.EnableDebug,
	}
	for i := range p.slots {
		// Over-allocate by the alignment and reslice at the first aligned
		// offset. Go heap objects do not move, so caching the address of
		// block[0] for the pool's lifetime is sound as long as the slice
		// itself is retained, which the slot does.
		raw := make([]byte, cfg.BlockSize+align)
		addr := uintptr(unsafe.Pointer(&raw[0]))
		shift := 0
		if rem := int(addr % uintptr(align)); rem != 0 {
			shift = align - rem
		}
		p.slots[i].block = raw[shift : shift+cfg.BlockSize : shift+cfg.BlockSize]
		p.slots[i].base = addr + uintptr(shift)
	}
	return p, nil
}

// Acquire leases a block of at least n bytes and returns it with length
// equal to the pool's block size. Oversized requests and exhaustion are
// delegated to the failure policy; its return value is passed through
// verbatim. The scan starts at the calling thread's offset and examines
// every slot at most once.
func (p *SlotPool) Acquire(n int) []byte {
	return p.acquireFrom(concurrency.StartIndex(len(p.slots)), n)
}

func (p *SlotPool) acquireFrom(start, n int) []byte {
	if n > p.blockSize {
		return p.policy.OnOversized(n)
	}
	idx := start
	for range p.slots {
		s := &p.slots[idx]
		if s.occupied.CompareAndSwap(false, true) {
			if p.debug {
				log.Printf("[pool] acquire: slot=%d addr=0x%x n=%d", idx, s.base, n)
			}
			return s.block
		}
		idx = p.next(idx)
	}
	return p.policy.OnExhausted(n)
}

// Release returns a block previously obtained from Acquire. The slice
// must be exactly the one Acquire returned; anything else is reported to
// the failure policy as a leak.
func (p *SlotPool) Release(b []byte) {
	p.releaseFrom(concurrency.StartIndex(len(p.slots)), b)
}

func (p *SlotPool) releaseFrom(start int, b []byte) {
	if len(b) == 0 {
		p.policy.OnLeak(0)
		return
	}
	p.releaseAddrFrom(start, uintptr(unsafe.Pointer(&b[0])))
}

// ReleaseAddr releases the block whose base address equals addr. It
// exists for collaborators that only retain an offset interior pointer
// and reconstruct the base themselves (see the envelope package).
func (p *SlotPool) ReleaseAddr(addr uintptr) {
	p.releaseAddrFrom(concurrency.StartIndex(len(p.slots)), addr)
}

func (p *SlotPool) releaseAddrFrom(start int, addr uintptr) {
	idx := start
	for range p.slots {
		s := &p.slots[idx]
		if s.base == addr {
			s.occupied.Store(false)
			if p.debug {
				log.Printf("[pool] release: slot=%d addr=0x%x", idx, addr)
			}
			return
		}
		idx = p.next(idx)
	}
	p.policy.OnLeak(addr)
}

// OccupiedCount reports how many slots are currently leased.
//
// WARNING: not thread safe. The walk observes each flag by setting and
// restoring it without coordination; only call it while no other pool
// operation is in flight. Intended for tests and inspection.
func (p *SlotPool) OccupiedCount() int {
	count := 0
	for i := range p.slots {
		if p.slots[i].occupied.Swap(true) {
			count++
		} else {
			p.slots[i].occupied.Store(false)
		}
	}
	return count
}

// Owns reports whether addr falls inside any backing block. Interior
// pointers are accepted, so collaborators that offset the base address
// by a header of their own can test their payload pointers directly.
// O(capacity); keep it off the hot path.
func (p *SlotPool) Owns(addr uintptr) bool {
	for i := range p.slots {
		s := &p.slots[i]
		if addr >= s.base && addr < s.base+uintptr(p.blockSize) {
			return true
		}
	}
	return false
}

// Capacity returns the fixed number of slots.
func (p *SlotPool) Capacity() int { return len(p.slots) }

// BlockSize returns the fixed size in bytes of every block.
func (p *SlotPool) BlockSize() int { return p.blockSize }

// Alignment returns the byte alignment of every block.
func (p *SlotPool) Alignment() int { return p.alignment }

// next returns idx advanced by 1 modulo capacity.
func (p *SlotPool) next(idx int) int {
	if idx+1 == len(p.slots) {
		return 0
	}
	return idx + 1
}
