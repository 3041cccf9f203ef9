// File: pool/bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"testing"

	"github.com/momentics/faultpool/fake"
	"github.com/momentics/faultpool/pool"
)

func newBenchPool(b *testing.B) *pool.SlotPool {
	b.Helper()
	p, err := pool.New(&pool.Config{
		Capacity:  8192,
		BlockSize: 1024,
		Policy:    fake.NewPolicy(),
	})
	if err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkAcquireRelease(b *testing.B) {
	p := newBenchPool(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := p.Acquire(512)
		p.Release(buf)
	}
}

func BenchmarkHandleAcquireRelease(b *testing.B) {
	p := newBenchPool(b)
	h := p.Handle()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := h.Acquire(512)
		h.Release(buf)
	}
}

func BenchmarkAcquireReleaseParallel(b *testing.B) {
	p := newBenchPool(b)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		h := p.Handle()
		for pb.Next() {
			buf := h.Acquire(512)
			h.Release(buf)
		}
	})
}
