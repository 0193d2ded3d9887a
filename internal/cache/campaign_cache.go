// internal/cache/campaign_cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pramou/campaign-backend/internal/model"
)

// Store is the campaign-by-ID cache the service reads through. A miss
// returns (nil, nil).
type Store interface {
	Get(ctx context.Context, id string) (*model.Campaign, error)
	Save(ctx context.Context, c *model.Campaign) error
	Invalidate(ctx context.Context, id string) error
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

// CampaignCache keeps campaign records in redis as JSON with a TTL.
// Only persisted fields are cached; derived status and next activation
// are recomputed after every read.
type CampaignCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCampaignCache(rdb *redis.Client, ttl time.Duration) *CampaignCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CampaignCache{rdb: rdb, ttl: ttl}
}

func campaignKey(id string) string {
	return fmt.Sprintf("campaign:%s:meta", id)
}

func (c *CampaignCache) Get(ctx context.Context, id string) (*model.Campaign, error) {
	val, err := c.rdb.Get(ctx, campaignKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var campaign model.Campaign
	if err := json.Unmarshal([]byte(val), &campaign); err != nil {
		// A corrupt entry behaves like a miss.
		return nil, nil
	}
	return &campaign, nil
}

func (c *CampaignCache) Save(ctx context.Context, campaign *model.Campaign) error {
	stripped := *campaign
	stripped.Status = ""
	stripped.NextActivation = nil

	data, err := json.Marshal(&stripped)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.rdb.Set(ctx, campaignKey(campaign.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *CampaignCache) Invalidate(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, campaignKey(id)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}

var _ Store = (*CampaignCache)(nil)
