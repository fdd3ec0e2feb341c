package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"territory-api/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// HubCache is a read-through cache for hub location lookups backed by redis.
// Misses and redis failures are surfaced to the caller, which falls through
// to the database.
type HubCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHubCache connects to redis at addr with the given entry TTL.
func NewHubCache(addr string, ttl time.Duration) *HubCache {
	return &HubCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func hubKey(hubID uuid.UUID) string {
	return "hub:location:" + hubID.String()
}

// Get returns nil on a cache miss.
func (c *HubCache) Get(ctx context.Context, hubID uuid.UUID) (*models.BusinessHub, error) {
	data, err := c.client.Get(ctx, hubKey(hubID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: failed to get hub: %w", err)
	}

	var hub models.BusinessHub
	if err := json.Unmarshal(data, &hub); err != nil {
		return nil, fmt.Errorf("cache: failed to decode hub: %w", err)
	}

	return &hub, nil
}

// Set stores the hub for the configured TTL.
func (c *HubCache) Set(ctx context.Context, hub *models.BusinessHub) error {
	data, err := json.Marshal(hub)
	if err != nil {
		return fmt.Errorf("cache: failed to encode hub: %w", err)
	}

	if err := c.client.Set(ctx, hubKey(hub.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set hub: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry for a hub, if any.
func (c *HubCache) Invalidate(ctx context.Context, hubID uuid.UUID) error {
	if err := c.client.Del(ctx, hubKey(hubID)).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate hub: %w", err)
	}
	return nil
}
