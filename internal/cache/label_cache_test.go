package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLabelCache_NilClient(t *testing.T) {
	ctx := context.Background()
	cache := NewLabelCache(nil, zap.NewNop())

	// Redis 없이도 모든 연산이 no-op으로 동작해야 함
	cache.Set(ctx, "sale.order", "partner_id", "", "Customer (partner_id)")

	label, ok := cache.Get(ctx, "sale.order", "partner_id", "")
	assert.False(t, ok)
	assert.Empty(t, label)

	cache.Invalidate(ctx, "sale.order")
}

func TestLabelCache_NilCache(t *testing.T) {
	ctx := context.Background()

	var cache *LabelCache
	cache.Set(ctx, "sale.order", "partner_id", "", "Customer (partner_id)")

	label, ok := cache.Get(ctx, "sale.order", "partner_id", "")
	assert.False(t, ok)
	assert.Empty(t, label)

	cache.Invalidate(ctx, "sale.order")
}

func TestLabelCache_KeyFormat(t *testing.T) {
	cache := NewLabelCache(nil, zap.NewNop())

	assert.Equal(t, "export:label:sale.order:default:partner_id", cache.key("sale.order", "partner_id", ""))
	assert.Equal(t, "export:label:sale.order:ko:partner_id/country_id", cache.key("sale.order", "partner_id/country_id", "ko"))
}
