// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/encounter-budget/internal/redis"
)

// CreateTestRedisServer starts miniredis for the lifetime of t and returns a
// client on it together with the server, for tests that inspect or break
// the stored data directly
func CreateTestRedisServer(t testing.TB) (redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	})

	return client, mr
}
