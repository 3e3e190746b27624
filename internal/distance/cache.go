package distance

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Hour

// Cache is a read-through Redis cache over a Provider. Customers edit
// addresses far less often than they trigger quotes, so identical pairs are
// served from cache; only OK results are stored and any Redis failure falls
// through to the inner provider.
type Cache struct {
	Inner  Provider
	Client *redis.Client
	TTL    time.Duration
}

// Distance serves the lookup from Redis when possible and populates the cache
// on a successful miss.
func (c Cache) Distance(ctx context.Context, origin, destination string) (Result, error) {
	if c.Inner == nil {
		return Result{Status: StatusError}, errors.New("distance: cache has no inner provider")
	}
	key := cacheKey(origin, destination)
	if c.Client != nil && key != "" {
		if data, err := c.Client.Get(ctx, key).Bytes(); err == nil {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}
	res, err := c.Inner.Distance(ctx, origin, destination)
	if err != nil || res.Status != StatusOK {
		return res, err
	}
	if c.Client != nil && key != "" {
		if data, err := json.Marshal(res); err == nil {
			ttl := c.TTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}
			_ = c.Client.Set(ctx, key, data, ttl).Err()
		}
	}
	return res, nil
}

func cacheKey(origin, destination string) string {
	o := strings.ToLower(strings.TrimSpace(origin))
	d := strings.ToLower(strings.TrimSpace(destination))
	if o == "" || d == "" {
		return ""
	}
	sum := sha1.Sum([]byte(o + "|" + d))
	return "distance:" + hex.EncodeToString(sum[:])
}
