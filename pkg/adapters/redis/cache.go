// Package redis caches decorated documents. Decoration is deterministic for
// a given (html, selector, options) triple, so responses can be memoized
// keyed by a content hash.
package redis

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/zeebo/blake3"
)

// Cache stores decorated HTML in Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the cache.
type Option func(*Cache)

// WithTTL sets the expiration for cached documents. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: "blurtext:doc:",
		ttl:    time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key derives the cache key for one decoration request. Options are
// canonicalized through JSON (map keys marshal sorted) and the whole request
// is hashed with BLAKE3.
func Key(html, selector string, options map[string]any) string {
	canonical, _ := json.Marshal(options)
	h := blake3.New()
	for _, part := range []string{html, "\x00", selector, "\x00"} {
		h.Write([]byte(part))
	}
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached document for key, reporting whether it was present.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, backend.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores the decorated document under key.
func (c *Cache) Set(ctx context.Context, key, decorated string) error {
	if err := c.client.Set(ctx, c.prefix+key, decorated, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
