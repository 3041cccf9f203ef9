// File: internal/concurrency/startindex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-thread scan offsets for slot arrays. Spreading the first probed
// slot across the array keeps concurrent callers from funneling through
// slot 0 and fighting over the same cache lines.

package concurrency

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// StartIndex derives a scan offset in [0, capacity) for the calling OS
// thread. The raw thread id is hashed so that ids handed out sequentially
// by the kernel still land far apart in the slot array.
//
// Goroutines migrate between OS threads, so the offset is a placement
// hint, not an identity: two calls from one goroutine may probe from
// different offsets. Callers that want a fixed offset for a worker's
// lifetime should compute it once at worker setup and reuse it.
func StartIndex(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], threadID())
	return int(xxh3.Hash(b[:]) % uint64(capacity))
}
