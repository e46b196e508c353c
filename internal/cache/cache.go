package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

const (
	defaultTTL = 10 * time.Minute
	keyPrefix  = "suggest:"
)

// Cache wraps a Redis client and memoizes ranked suggestion lists.
// Entries are keyed by the catalog's content fingerprint, so processes
// sharing a Redis only share rankings computed from identical catalogs.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to ten minutes.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// SuggestionKey returns the Redis key for params ranked against the catalog
// with the given fingerprint.
func SuggestionKey(catalogFP string, params itinerary.SuggestParams) (string, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshaling suggestion params: %w", err)
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s%s:%s", keyPrefix, catalogFP, hex.EncodeToString(sum[:])), nil
}

// GetSuggestions retrieves a cached ranking.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetSuggestions(ctx context.Context, catalogFP string, params itinerary.SuggestParams) ([]itinerary.Candidate, error) {
	key, err := SuggestionKey(catalogFP, params)
	if err != nil {
		return nil, err
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	out := []itinerary.Candidate{}
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling cached suggestions %s: %w", key, err)
	}

	return out, nil
}

// SetSuggestions stores a ranking with the configured TTL.
func (c *Cache) SetSuggestions(ctx context.Context, catalogFP string, params itinerary.SuggestParams, cands []itinerary.Candidate) error {
	if cands == nil {
		cands = []itinerary.Candidate{}
	}

	key, err := SuggestionKey(catalogFP, params)
	if err != nil {
		return err
	}

	b, err := json.Marshal(cands)
	if err != nil {
		return fmt.Errorf("marshaling suggestions %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// Invalidate removes every cached ranking and returns how many were removed.
func (c *Cache) Invalidate(ctx context.Context) (int, error) {
	removed := 0
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return removed, fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
		removed += int(n)
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scanning cached suggestions: %w", err)
	}
	return removed, nil
}
