// File: pool/policy_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// White-box test for the terminating policy: intercepts the fatal path
// instead of letting the test binary die.

package pool

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interceptFatal(t *testing.T) *[]string {
	t.Helper()
	var calls []string
	orig := fatalf
	fatalf = func(format string, args ...any) {
		calls = append(calls, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { fatalf = orig })
	return &calls
}

func TestTerminationPolicyOversized(t *testing.T) {
	calls := interceptFatal(t)
	out := TerminationPolicy{}.OnOversized(2048)
	assert.Nil(t, out)
	require.Len(t, *calls, 1)
	assert.Contains(t, (*calls)[0], "2048")
}

func TestTerminationPolicyExhausted(t *testing.T) {
	calls := interceptFatal(t)
	out := TerminationPolicy{}.OnExhausted(512)
	assert.Nil(t, out)
	require.Len(t, *calls, 1)
	assert.Contains(t, (*calls)[0], "exhausted")
}

func TestTerminationPolicyLeak(t *testing.T) {
	calls := interceptFatal(t)
	TerminationPolicy{}.OnLeak(0xdeadbeef)
	require.Len(t, *calls, 1)
	assert.Contains(t, (*calls)[0], "deadbeef")
}

func TestNilPolicyDefaultsToTermination(t *testing.T) {
	calls := interceptFatal(t)
	p, err := New(&Config{Capacity: 1, BlockSize: 32})
	require.NoError(t, err)

	p.Acquire(32)
	p.Acquire(32) // exhausted, routed to the terminating policy
	require.Len(t, *calls, 1)
	assert.Contains(t, (*calls)[0], "exhausted")
}
