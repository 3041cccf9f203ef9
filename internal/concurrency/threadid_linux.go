// File: internal/concurrency/threadid_linux.go
//go:build linux
// +build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux-specific thread identity used to derive per-thread scan offsets.

package concurrency

import "golang.org/x/sys/unix"

// threadID returns the kernel task id of the calling OS thread.
// Stable for the thread's lifetime; distinct across live threads.
func threadID() uint64 {
	return uint64(unix.Gettid())
}
