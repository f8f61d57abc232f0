//go:build unit

package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter_Allow(t *testing.T) {
	l := NewLocalLimiter(0.001, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "amadeus")
		require.NoError(t, err)
		assert.True(t, ok, "call %d should be inside the burst", i+1)
	}

	ok, err := l.Allow(ctx, "amadeus")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "duffel")
	require.NoError(t, err)
	assert.True(t, ok, "keys must not share a bucket")
}

func TestUnlimited_Allow(t *testing.T) {
	ok, err := Unlimited{}.Allow(context.Background(), "any")
	require.NoError(t, err)
	assert.True(t, ok)
}
