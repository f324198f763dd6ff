package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore()
	store.now = func() time.Time { return now }

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Hour))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation outlives the token")
	assert.Empty(t, store.revoked)
}

func TestMemoryTokenStoreIgnoresExpiredTokens(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	require.NoError(t, store.Revoke(ctx, "jti-old", 0))
	require.NoError(t, store.Revoke(ctx, "jti-neg", -time.Second))
	assert.Empty(t, store.revoked)
}

func TestMemoryTokenStorePrunesOnRevoke(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "a", time.Minute))
	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Revoke(ctx, "b", time.Minute))

	assert.Len(t, store.revoked, 1)
	assert.Contains(t, store.revoked, "b")
}
