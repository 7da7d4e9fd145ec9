package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const tokenKeyPrefix = "tracking_token:"

type cachedToken struct {
	OrderID   int64      `json:"order_id"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TokenCache is a cache-aside decorator for tracking token lookups.
// Public pages reconnect about once a minute per viewer; the cache keeps
// those reconnects off the database.
//
// Only found tokens are cached. A token deactivated in the database stays
// usable for at most ttl. Redis failures fall back to the source.
type TokenCache struct {
	client *redis.Client
	source ports.TrackingTokenRepository
	ttl    time.Duration
	logger zerolog.Logger
}

// NewTokenCache wraps source. Key format: tracking_token:<uuid>
func NewTokenCache(client *redis.Client, source ports.TrackingTokenRepository, ttl time.Duration, logger zerolog.Logger) *TokenCache {
	return &TokenCache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger.With().Str("component", "token_cache").Logger(),
	}
}

// Get returns the token from Redis or, on a miss, from source.
func (c *TokenCache) Get(ctx context.Context, value kernel.UUID) (tracking.Token, error) {
	key := tokenKeyPrefix + value.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedToken
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			metrics.TrackingTokenCacheTotal.WithLabelValues("hit").Inc()
			return tracking.Token{
				Value:     value,
				OrderID:   cached.OrderID,
				Active:    cached.Active,
				ExpiresAt: cached.ExpiresAt,
			}, nil
		}
		c.logger.Warn().Str("key", key).Msg("dropping undecodable cache entry")
	case errors.Is(err, redis.Nil):
	default:
		metrics.TrackingTokenCacheTotal.WithLabelValues("error").Inc()
		c.logger.Warn().Err(err).Msg("token cache read failed")
	}

	metrics.TrackingTokenCacheTotal.WithLabelValues("miss").Inc()
	token, err := c.source.Get(ctx, value)
	if err != nil {
		return tracking.Token{}, err
	}

	payload, err := json.Marshal(cachedToken{OrderID: token.OrderID, Active: token.Active, ExpiresAt: token.ExpiresAt})
	if err == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn().Err(setErr).Msg("token cache write failed")
		}
	}
	return token, nil
}
