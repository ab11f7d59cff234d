// Package cache stores rendered list responses in redis. Each cache group
// carries a generation counter; invalidating a group bumps the counter so
// every older entry becomes unreachable and ages out by TTL.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrCorruptEntry = errs.New("corrupt cache entry")

type Entry struct {
	Status int
	Header http.Header
	Body   []byte
}

type Store interface {
	// Key resolves the storage key for requestKey under the group's current
	// generation. Resolve it before running the handler so a concurrent
	// invalidation is never masked.
	Key(ctx context.Context, group, requestKey string) (string, error)
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, e *Entry) error
	Invalidate(ctx context.Context, group string) error
}

type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, cfg config.CacheConfig, logger *slog.Logger) *RedisCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "cache"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (c *RedisCache) generationKey(group string) string {
	return fmt.Sprintf("%s:%s:gen", c.prefix, group)
}

func (c *RedisCache) Key(ctx context.Context, group, requestKey string) (string, error) {
	gen, err := c.client.Get(ctx, c.generationKey(group)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errs.Wrap(err, "read cache generation")
	}
	sum := sha1.Sum([]byte(requestKey))
	return fmt.Sprintf("%s:%s:v%d:%x", c.prefix, group, gen, sum[:]), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Entry, error) {
	bs, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "read cache entry")
	}
	e, err := decodeEntry(bs)
	if err != nil {
		c.logger.Warn("Dropping unreadable cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}
	return e, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, e *Entry) error {
	payload, err := encodeEntry(e)
	if err != nil {
		return err
	}
	return errs.Wrap(c.client.Set(ctx, key, payload, c.ttl).Err(), "write cache entry")
}

func (c *RedisCache) Invalidate(ctx context.Context, group string) error {
	return errs.Wrap(c.client.Incr(ctx, c.generationKey(group)).Err(), "bump cache generation")
}

// NoopCache is used when caching is disabled or redis is unreachable.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Key(context.Context, string, string) (string, error) { return "", nil }
func (NoopCache) Get(context.Context, string) (*Entry, error)         { return nil, nil }
func (NoopCache) Set(context.Context, string, *Entry) error           { return nil }
func (NoopCache) Invalidate(context.Context, string) error            { return nil }

// Payload layout: [4 bytes status][4 bytes header length][header JSON][body].
func encodeEntry(e *Entry) ([]byte, error) {
	hdr, err := json.Marshal(e.Header)
	if err != nil {
		return nil, errs.Wrap(err, "encode cache header")
	}
	out := make([]byte, 8+len(hdr)+len(e.Body))
	binary.BigEndian.PutUint32(out[0:4], uint32(e.Status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdr)))
	copy(out[8:], hdr)
	copy(out[8+len(hdr):], e.Body)
	return out, nil
}

func decodeEntry(bs []byte) (*Entry, error) {
	if len(bs) < 8 {
		return nil, ErrCorruptEntry
	}
	status := int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return nil, ErrCorruptEntry
	}
	header := make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return nil, errs.Mark(err, ErrCorruptEntry)
		}
	}
	return &Entry{Status: status, Header: header, Body: bs[8+hlen:]}, nil
}
