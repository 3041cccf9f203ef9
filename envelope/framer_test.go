// File: envelope/framer_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package envelope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/faultpool/api"
	"github.com/momentics/faultpool/envelope"
	"github.com/momentics/faultpool/fake"
	"github.com/momentics/faultpool/pool"
)

const headerSize = 128

func newTestFramer(t *testing.T) (*envelope.Framer, *pool.SlotPool, *fake.Policy) {
	t.Helper()
	policy := fake.NewPolicy()
	p, err := pool.New(&pool.Config{Capacity: 4, BlockSize: 1024, Policy: policy})
	require.NoError(t, err)
	f, err := envelope.New(p, headerSize)
	require.NoError(t, err)
	return f, p, policy
}

func TestFramerValidation(t *testing.T) {
	p, err := pool.New(&pool.Config{Capacity: 1, BlockSize: 64, Policy: fake.NewPolicy()})
	require.NoError(t, err)

	_, err = envelope.New(nil, 8)
	require.Error(t, err)

	_, err = envelope.New(p, -1)
	require.Error(t, err)

	_, err = envelope.New(p, 64)
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.ErrCodeInvalidArgument, apiErr.Code)

	f, err := envelope.New(p, 0)
	require.NoError(t, err)
	assert.Zero(t, f.HeaderSize())
}

func TestPayloadRoundTrip(t *testing.T) {
	f, p, policy := newTestFramer(t)

	payload := f.AllocPayload(256)
	require.NotNil(t, payload)
	assert.Len(t, payload, 1024-headerSize)
	assert.Equal(t, 1, p.OccupiedCount())
	assert.True(t, f.Owns(payload))

	f.FreePayload(payload)
	assert.Equal(t, 0, p.OccupiedCount())
	assert.Zero(t, policy.LeakCalls())
}

func TestHeaderZeroedOnReuse(t *testing.T) {
	f, p, _ := newTestFramer(t)

	// Dirty every block, header region included. Blocks are reused
	// without scrubbing, so a stale header must not survive AllocPayload.
	dirty := make([][]byte, p.Capacity())
	for i := range dirty {
		dirty[i] = p.Acquire(1024)
		require.NotNil(t, dirty[i])
		for j := range dirty[i] {
			dirty[i][j] = 0xff
		}
	}
	for _, b := range dirty {
		p.Release(b)
	}

	// Cycle every slot through the framer, then inspect the raw blocks.
	payloads := make([][]byte, p.Capacity())
	for i := range payloads {
		payloads[i] = f.AllocPayload(16)
		require.NotNil(t, payloads[i])
	}
	for _, payload := range payloads {
		f.FreePayload(payload)
	}
	for i := 0; i < p.Capacity(); i++ {
		b := p.Acquire(1024)
		require.NotNil(t, b)
		for j := 0; j < headerSize; j++ {
			require.Zero(t, b[j], "stale header byte %d survived reuse", j)
		}
	}
}

func TestOwnsRejectsForeignPayload(t *testing.T) {
	f, _, _ := newTestFramer(t)
	assert.False(t, f.Owns(make([]byte, 16)))
	assert.False(t, f.Owns(nil))
}

func TestFreeForeignPayloadHitsLeakHook(t *testing.T) {
	f, p, policy := newTestFramer(t)
	f.FreePayload(make([]byte, 16))
	assert.Equal(t, 1, policy.LeakCalls())
	assert.Equal(t, 0, p.OccupiedCount())

	f.FreePayload(nil)
	assert.Equal(t, 2, policy.LeakCalls())
}

func TestAllocBlock(t *testing.T) {
	f, p, policy := newTestFramer(t)

	b := f.AllocBlock()
	require.NotNil(t, b)
	for i := 0; i < headerSize; i++ {
		assert.Zero(t, b[i], "header byte %d not zeroed", i)
	}
	assert.Equal(t, 1, p.OccupiedCount())

	f.FreeBlock(b)
	assert.Equal(t, 0, p.OccupiedCount())
	assert.Zero(t, policy.LeakCalls())
}

func TestOversizedPayloadRoutedToPolicy(t *testing.T) {
	f, _, policy := newTestFramer(t)

	// headerSize + n exceeds the block size.
	assert.Nil(t, f.AllocPayload(1024))
	assert.Equal(t, 1, policy.OversizedCalls())
	assert.Equal(t, int64(1024+headerSize), policy.LastRequested.Load())
}
