package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// labelTTL bounds staleness when field descriptions change in the catalog
const labelTTL = 10 * time.Minute

// LabelCache is a best-effort Redis cache for derived export line labels,
// keyed by (root model, dotted path, language). All operations tolerate a
// nil client so tests and local setups can run without Redis.
type LabelCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewLabelCache creates a new LabelCache
func NewLabelCache(client *redis.Client, logger *zap.Logger) *LabelCache {
	return &LabelCache{
		client: client,
		logger: logger,
	}
}

// Get returns a cached label; ok is false on miss or any Redis error
func (c *LabelCache) Get(ctx context.Context, model, path, lang string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}

	label, err := c.client.Get(ctx, c.key(model, path, lang)).Result()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Debug("Label cache read failed",
				zap.String("model", model),
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return "", false
	}
	return label, true
}

// Set stores a derived label; failures are logged and swallowed
func (c *LabelCache) Set(ctx context.Context, model, path, lang, label string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, c.key(model, path, lang), label, labelTTL).Err(); err != nil {
		if c.logger != nil {
			c.logger.Debug("Label cache write failed",
				zap.String("model", model),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
}

// Invalidate drops every cached label for a model, called when the
// model's field metadata changes
func (c *LabelCache) Invalidate(ctx context.Context, model string) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, fmt.Sprintf("export:label:%s:*", model), 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil && c.logger != nil {
		c.logger.Debug("Label cache invalidation failed",
			zap.String("model", model),
			zap.Error(err),
		)
	}
}

func (c *LabelCache) key(model, path, lang string) string {
	if lang == "" {
		lang = "default"
	}
	return fmt.Sprintf("export:label:%s:%s:%s", model, lang, path)
}
