// File: internal/concurrency/threadid_stub.go
//go:build !linux && !windows
// +build !linux,!windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without a cheap thread identity. Every caller
// hashes the same value, so scans degrade to a shared start offset.
// Correctness does not depend on the spread, only contention does.

package concurrency

import "os"

func threadID() uint64 {
	return uint64(os.Getpid())
}
