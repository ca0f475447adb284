package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"aurora_hotels/internal/adapters/observability"
	"aurora_hotels/internal/domain"
)

const keyPrefix = "aurora:manifest:"

// ManifestStore keeps the last run manifest per seed.
type ManifestStore struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *ManifestStore {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), ttl)
}

func NewWithClient(c *redis.Client, ttl time.Duration) *ManifestStore {
	return &ManifestStore{c: c, ttl: ttl}
}

func key(seed uint64) string { return keyPrefix + strconv.FormatUint(seed, 10) }

func (s *ManifestStore) Get(ctx context.Context, seed uint64) (domain.Manifest, error) {
	v, err := s.c.Get(ctx, key(seed)).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveManifest("miss")
		return domain.Manifest{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("redis get manifest: %w", err)
	}
	observability.ObserveManifest("hit")
	var m domain.Manifest
	if err := json.Unmarshal(v, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// Put stores m under its seed; a zero ttl keeps it forever.
func (s *ManifestStore) Put(ctx context.Context, m domain.Manifest) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	observability.ObserveManifest("put")
	return s.c.Set(ctx, key(m.Seed), b, s.ttl).Err()
}

func (s *ManifestStore) Close() error { return s.c.Close() }
