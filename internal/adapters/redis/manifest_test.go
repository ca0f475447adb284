package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "aurora_hotels/internal/adapters/redis"
	"aurora_hotels/internal/domain"
)

func newStore(t *testing.T, ttl time.Duration) (*redisad.ManifestStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestManifestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t, time.Hour)

	_, err := s.Get(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)

	m := domain.Manifest{
		RunID:       "run-1",
		Seed:        42,
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Tables: map[string]domain.TableStats{
			"Hoteis":   {Rows: 5, SHA256: "abc"},
			"Reservas": {Rows: 60000, SHA256: "def"},
		},
	}
	require.NoError(t, s.Put(ctx, m))
	assert.True(t, mr.Exists("aurora:manifest:42"))
	assert.Equal(t, time.Hour, mr.TTL("aurora:manifest:42"))

	got, err := s.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = s.Get(ctx, 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManifestExpires(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t, time.Minute)

	require.NoError(t, s.Put(ctx, domain.Manifest{Seed: 1}))
	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManifestCorruptValue(t *testing.T) {
	s, mr := newStore(t, 0)
	require.NoError(t, mr.Set("aurora:manifest:9", "{not json"))

	_, err := s.Get(context.Background(), 9)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
