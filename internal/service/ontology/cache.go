package ontology

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
)

// Cache stores OLS search results keyed by term ID. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, term string) ([]Doc, bool)
	Set(ctx context.Context, term string, docs []Doc)
}

// MemoryCache is an in-process Cache with no eviction. Ontology terms are a
// small, slowly changing set, so unbounded growth is acceptable for the
// lifetime of a server process.
type MemoryCache struct {
	mu    sync.RWMutex
	terms map[string][]Doc
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{terms: make(map[string][]Doc)}
}

func (c *MemoryCache) Get(_ context.Context, term string) ([]Doc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	docs, ok := c.terms[term]
	return docs, ok
}

func (c *MemoryCache) Set(_ context.Context, term string, docs []Doc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms[term] = docs
}

const (
	redisKeyPrefix = "ols:term:"
	redisTTL       = 24 * time.Hour
)

// RedisCache is a Cache shared between server instances. Errors degrade to
// cache misses so a Redis outage never fails a validation request.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, term string) ([]Doc, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+term).Bytes()
	if err != nil {
		if err != redis.Nil {
			applog.LogWarn(ctx, "redis cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var docs []Doc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, false
	}
	return docs, true
}

func (c *RedisCache) Set(ctx context.Context, term string, docs []Doc) {
	raw, err := json.Marshal(docs)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+term, raw, redisTTL).Err(); err != nil {
		applog.LogWarn(ctx, "redis cache write failed", zap.Error(err))
	}
}

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
)
