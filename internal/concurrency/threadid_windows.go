// File: internal/concurrency/threadid_windows.go
//go:build windows
// +build windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows-specific thread identity used to derive per-thread scan offsets.

package concurrency

import "golang.org/x/sys/windows"

// threadID returns the identifier of the calling OS thread.
func threadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
