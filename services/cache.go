package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dcode-github/property_dashboard/metrics"
	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/utils"
	"github.com/redis/go-redis/v9"
)

const (
	propertyPrefix = "property:"
	scanCount      = 100
)

// CachedService is a read-through Redis cache in front of another
// DataService. Only property reads are cached. Reads that miss or fail on
// Redis fall through; property writes invalidate every cached property key.
type CachedService struct {
	next  DataService
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedService(next DataService, redisClient *redis.Client, ttl time.Duration) *CachedService {
	return &CachedService{next: next, redis: redisClient, ttl: ttl}
}

func (c *CachedService) GetProperties(ctx context.Context) ([]models.Property, error) {
	return cached(ctx, c, generateCacheKey(propertyPrefix, "list"), c.next.GetProperties)
}

func (c *CachedService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	return cached(ctx, c, generateCacheKey(propertyPrefix, "one", id), func(ctx context.Context) (models.Property, error) {
		return c.next.GetProperty(ctx, id)
	})
}

func (c *CachedService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	created, err := c.next.CreateProperty(ctx, p)
	if err != nil {
		return created, err
	}
	c.invalidate(ctx, propertyPrefix)
	return created, nil
}

func (c *CachedService) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	updated, err := c.next.UpdateProperty(ctx, p)
	if err != nil {
		return updated, err
	}
	c.invalidate(ctx, propertyPrefix)
	return updated, nil
}

func (c *CachedService) DeleteProperty(ctx context.Context, id string) error {
	if err := c.next.DeleteProperty(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, propertyPrefix)
	return nil
}

// Conversations are written outside this service, so nothing here could
// invalidate them. Conversation reads always go to the backing store.
func (c *CachedService) GetConversations(ctx context.Context) ([]models.Conversation, error) {
	return c.next.GetConversations(ctx)
}

func (c *CachedService) GetConversationsByProperty(ctx context.Context, propertyID string) ([]models.Conversation, error) {
	return c.next.GetConversationsByProperty(ctx, propertyID)
}

func (c *CachedService) GetConversation(ctx context.Context, id string) (models.Conversation, error) {
	return c.next.GetConversation(ctx, id)
}

func cached[T any](ctx context.Context, c *CachedService, key string, load func(context.Context) (T, error)) (T, error) {
	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		jsonErr := json.Unmarshal(raw, &v)
		if jsonErr == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			utils.Logger.Debugf("Cache Hit for key: %s", key)
			return v, nil
		}
		utils.Logger.Warnf("Discarding undecodable cache entry %s: %v", key, jsonErr)
	case errors.Is(err, redis.Nil):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		utils.Logger.Debugf("Cache Miss for key: %s", key)
	default:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		utils.Logger.Warnf("Redis GET error for key %s: %v", key, err)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		utils.Logger.Warnf("Failed to serialize cache entry %s: %v", key, err)
		return v, nil
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		utils.Logger.Warnf("Failed to cache response for key %s: %v", key, err)
	}
	return v, nil
}

func (c *CachedService) invalidate(ctx context.Context, prefix string) {
	scanPattern := prefix + "*"

	var keysToDelete []string
	var cursor uint64
	for {
		keys, next, err := c.redis.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			utils.Logger.Errorf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := c.redis.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		utils.Logger.Errorf("Error deleting %d cache keys matching '%s': %v", len(keysToDelete), scanPattern, err)
		return
	}
	utils.Logger.Debugf("Cache invalidated: deleted %d keys matching '%s'", len(keysToDelete), scanPattern)
}

func generateCacheKey(prefix string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "&")))
	return prefix + hex.EncodeToString(sum[:])
}
