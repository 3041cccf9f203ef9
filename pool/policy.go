// File: pool/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default failure policy. The pool exists to be the allocator of last
// resort, so when it cannot serve a request there is no safe fallback
// path left: the default for every failure class is to halt the process
// rather than continue in an allocation-starved error-handling subsystem.

package pool

import (
	"log"

	"github.com/momentics/faultpool/api"
)

// fatalf terminates the process. A variable so the white-box test can
// intercept termination.
var fatalf = log.Fatalf

var _ api.FailurePolicy = TerminationPolicy{}

// TerminationPolicy halts the process on any pool failure. It is the
// policy used when Config.Policy is nil.
type TerminationPolicy struct{}

// OnOversized logs the request size and terminates.
func (TerminationPolicy) OnOversized(requested int) []byte {
	fatalf("[pool] request of %d bytes exceeds fixed block size, terminating", requested)
	return nil
}

// OnExhausted logs the request size and terminates.
func (TerminationPolicy) OnExhausted(requested int) []byte {
	fatalf("[pool] exhausted while serving a %d byte request, terminating", requested)
	return nil
}

// OnLeak logs the offending address and terminates.
func (TerminationPolicy) OnLeak(addr uintptr) {
	fatalf("[pool] release of address 0x%x not owned by this pool, terminating", addr)
}
