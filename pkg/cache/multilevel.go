package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// l1Entry carries the marshaled value with its expiry so the in-process
// tier never outlives the backend TTL.
type l1Entry struct {
	data      []byte
	expiresAt time.Time
}

// MultiLevel composes an in-process LRU over a backend Cache. A nil
// backend degrades to LRU-only operation (Redis unavailable or disabled).
type MultiLevel struct {
	l1 *lru.Cache[string, l1Entry]
	l2 Cache
}

// NewMultiLevel creates a multi-level cache with the given L1 capacity.
func NewMultiLevel(l1Size int, l2 Cache) (*MultiLevel, error) {
	l1, err := lru.New[string, l1Entry](l1Size)
	if err != nil {
		return nil, fmt.Errorf("failed to create L1 cache: %w", err)
	}
	return &MultiLevel{l1: l1, l2: l2}, nil
}

// Get reads a key, checking L1 before the backend. Backend hits are
// promoted into L1.
func (c *MultiLevel) Get(ctx context.Context, key string, value any) error {
	if entry, ok := c.l1.Get(key); ok {
		if time.Now().Before(entry.expiresAt) {
			return json.Unmarshal(entry.data, value)
		}
		c.l1.Remove(key)
	}

	if c.l2 == nil {
		return ErrNotFound
	}
	if err := c.l2.Get(ctx, key, value); err != nil {
		return err
	}

	// Promote with a short L1 horizon; the backend remains authoritative
	// for expiry.
	if data, err := json.Marshal(value); err == nil {
		c.l1.Add(key, l1Entry{data: data, expiresAt: time.Now().Add(l1Horizon)})
	}
	return nil
}

// Set writes through to both tiers.
func (c *MultiLevel) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	horizon := ttl
	if horizon > l1Horizon {
		horizon = l1Horizon
	}
	c.l1.Add(key, l1Entry{data: data, expiresAt: time.Now().Add(horizon)})

	if c.l2 == nil {
		return nil
	}
	return c.l2.Set(ctx, key, value, ttl)
}

// Delete removes a key from both tiers.
func (c *MultiLevel) Delete(ctx context.Context, key string) error {
	c.l1.Remove(key)
	if c.l2 == nil {
		return nil
	}
	return c.l2.Delete(ctx, key)
}

// Close releases the backend connection.
func (c *MultiLevel) Close() error {
	c.l1.Purge()
	if c.l2 == nil {
		return nil
	}
	return c.l2.Close()
}

// IsNotFound reports whether the error is a cache miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// l1Horizon bounds how long the in-process tier may serve an entry before
// rechecking the backend.
const l1Horizon = 5 * time.Minute
