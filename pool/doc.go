// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity slot pool for fault-path allocation.
// Every backing block is allocated once at construction with a fixed size
// and alignment; Acquire and Release are bounded lock-free scans arbitrated
// only by per-slot atomic flags. Failure conditions (oversized request,
// exhaustion, misuse) are delegated to a replaceable policy that terminates
// the process by default.
// See slotpool.go, policy.go, config.go for implementation details.
package pool
