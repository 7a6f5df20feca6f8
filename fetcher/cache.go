package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"newslens/config"
	"newslens/types"

	"github.com/redis/go-redis/v9"
)

// Cached wraps a Source with a topic-keyed Redis cache so repeated runs on
// the same topic within the TTL reuse the raw article set. Only fetched
// inputs are cached; pipeline results never are.
type Cached struct {
	source Source
	client *redis.Client
	ttl    time.Duration
}

// NewCached builds the cache wrapper. A non-positive ttl uses the default.
func NewCached(source Source, client *redis.Client, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = config.DefaultFetchCacheTTL
	}
	return &Cached{source: source, client: client, ttl: ttl}
}

// Fetch returns the cached article set for the topic when present,
// otherwise fetches live and stores the result. Cache failures degrade to
// a live fetch; only the live fetch itself can fail the call.
func (c *Cached) Fetch(ctx context.Context, topic string) ([]types.Article, error) {
	key := cacheKey(topic)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var articles []types.Article
		if jsonErr := json.Unmarshal([]byte(raw), &articles); jsonErr == nil {
			log.Printf("fetcher: cache hit for topic %q (%d articles)", topic, len(articles))
			return articles, nil
		}
		log.Printf("fetcher: discarding corrupt cache entry for topic %q", topic)
	} else if err != redis.Nil {
		log.Printf("Warning: fetch cache read failed: %v", err)
	}

	articles, err := c.source.Fetch(ctx, topic)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(articles); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Printf("Warning: fetch cache write failed: %v", err)
		}
	}

	return articles, nil
}

func cacheKey(topic string) string {
	return "newslens:fetch:" + types.GenerateID(strings.ToLower(strings.TrimSpace(topic)))
}

// NewRedisClientFromEnv creates a Redis client from REDIS_ADDR, REDIS_PASS,
// and REDIS_DB, verifying connectivity with a short ping.
func NewRedisClientFromEnv() (*redis.Client, error) {
	addr := config.GetEnvOrDefault("REDIS_ADDR", "localhost:6379")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetEnvOrDefault("REDIS_PASS", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return client, nil
}
