// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-identity helpers for faultpool. Platform-specific sources of
// thread identity live in separate files guarded by build tags
// (threadid_linux.go, threadid_windows.go, threadid_stub.go).
package concurrency
