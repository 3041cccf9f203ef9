// File: pool/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Immutable pool configuration. All fields are fixed at construction;
// the pool never grows, shrinks, or re-aligns at runtime.

package pool

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/momentics/faultpool/api"
)

// Config holds parameters immutable per pool instance.
type Config struct {
	Capacity    int               // Number of slots; hard ceiling on concurrent leases
	BlockSize   int               // Bytes per backing block; maximum single request size
	Alignment   int               // Byte alignment of every block; 0 selects the detected cache line
	Policy      api.FailurePolicy // Failure hooks; nil selects TerminationPolicy
	EnableDebug bool              // Whether to log each acquire/release
}

// DefaultConfig returns default configuration values.
// 8192 slots of 1 KiB bound worst-case footprint at 8 MiB while supporting
// 8192 concurrently in-flight error objects across all threads.
func DefaultConfig() *Config {
	return &Config{
		Capacity:    8192, // 64 * 128 slots
		BlockSize:   1024, // 1 KiB per error object, header included
		Alignment:   0,    // Auto-detect cache line size
		Policy:      nil,  // Terminate on any failure
		EnableDebug: false,
	}
}

// defaultAlignment picks the CPU cache line size so that adjacent blocks
// never share a line. Falls back to 64 when detection reports nothing.
func defaultAlignment() int {
	if cl := cpuid.CPU.CacheLine; cl >= minAlignment {
		return cl
	}
	return 64
}

const minAlignment = 8

func (cfg *Config) validate() error {
	if cfg.Capacity <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "pool capacity must be positive").
			WithContext("capacity", cfg.Capacity)
	}
	if cfg.BlockSize <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "block size must be positive").
			WithContext("blockSize", cfg.BlockSize)
	}
	if cfg.Alignment < 0 || (cfg.Alignment != 0 && cfg.Alignment&(cfg.Alignment-1) != 0) {
		return api.NewError(api.ErrCodeInvalidArgument, "alignment must be zero or a power of two").
			WithContext("alignment", cfg.Alignment)
	}
	return nil
}
