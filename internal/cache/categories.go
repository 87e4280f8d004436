package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/entity"
)

// CategoryCache wraps a catalog and serves ListCategories from memory for ttl.
// Every other call goes straight to the wrapped catalog.
type CategoryCache struct {
	dependency.Catalog

	ttl       time.Duration
	now       func() time.Time
	mu        sync.RWMutex
	loaded    bool
	cache     []entity.Category
	expiresAt time.Time
}

func NewCategoryCache(c *Config, catalog dependency.Catalog) (*CategoryCache, error) {
	ttl, err := c.categoriesTTL()
	if err != nil {
		return nil, err
	}
	return &CategoryCache{
		Catalog: catalog,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

func (c *CategoryCache) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if c.ttl <= 0 {
		return c.Catalog.ListCategories(ctx)
	}

	c.mu.RLock()
	cats, fresh := c.cache, c.loaded && c.now().Before(c.expiresAt)
	c.mu.RUnlock()
	if fresh {
		return cats, nil
	}

	cats, err := c.Catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache = cats
	c.loaded = true
	c.expiresAt = c.now().Add(c.ttl)
	c.mu.Unlock()

	slog.Default().DebugContext(ctx, "categories cache refreshed",
		slog.Int("count", len(cats)),
	)
	return cats, nil
}
