package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

const allItemsKey = "\x00all"

// itemCache holds the full catalog snapshot and single-item lookups.
// Entries expire after the TTL so edits made directly in the database show up eventually.
type itemCache struct {
	lists *expirable.LRU[string, []domain.CatalogItem]
	items *expirable.LRU[string, domain.CatalogItem]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &itemCache{
		lists: expirable.NewLRU[string, []domain.CatalogItem](1, nil, ttl),
		items: expirable.NewLRU[string, domain.CatalogItem](size, nil, ttl),
	}
}

func (c *itemCache) all() ([]domain.CatalogItem, bool) {
	items, ok := c.lists.Get(allItemsKey)
	if !ok {
		return nil, false
	}
	return append([]domain.CatalogItem(nil), items...), true
}

func (c *itemCache) setAll(items []domain.CatalogItem) {
	c.lists.Add(allItemsKey, append([]domain.CatalogItem(nil), items...))
	for _, item := range items {
		c.items.Add(item.ID, item)
	}
}

func (c *itemCache) get(id string) (domain.CatalogItem, bool) {
	return c.items.Get(id)
}

func (c *itemCache) set(item domain.CatalogItem) {
	c.items.Add(item.ID, item)
}

func (c *itemCache) purge() {
	c.lists.Purge()
	c.items.Purge()
}
