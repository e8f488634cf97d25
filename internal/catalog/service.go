package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// Service exposes the item catalog to the shop and the HTTP layer
type Service interface {
	ListSellable(ctx context.Context) ([]domain.CatalogItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	Sync(ctx context.Context, path string) (*SyncResult, error)
	Invalidate()
}

type service struct {
	repo      repository.Catalog
	loader    Loader
	cache     *itemCache
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a catalog service. publisher may be nil.
func NewService(repo repository.Catalog, loader Loader, publisher event.Publisher, cacheTTL time.Duration) Service {
	return &service{
		repo:      repo,
		loader:    loader,
		cache:     newItemCache(DefaultCacheSize, cacheTTL),
		publisher: publisher,
		now:       time.Now,
	}
}

// ListSellable returns every catalog item. Eligibility (sell price > 0) is
// decided by the caller so zero-priced items can still be listed.
func (s *service) ListSellable(ctx context.Context) ([]domain.CatalogItem, error) {
	if items, ok := s.cache.all(); ok {
		return items, nil
	}

	items, err := s.repo.ListSellableItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	s.cache.setAll(items)
	return items, nil
}

// GetItem returns one item, domain.ErrItemNotFound if it does not exist
func (s *service) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	if item, ok := s.cache.get(itemID); ok {
		return &item, nil
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	s.cache.set(*item)
	return item, nil
}

// Sync reloads the config file into the database and drops cached entries
func (s *service) Sync(ctx context.Context, path string) (*SyncResult, error) {
	config, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(config); err != nil {
		return nil, err
	}

	result, err := s.loader.SyncToDatabase(ctx, config, s.repo, path)
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.Invalidate()
	}

	if s.publisher != nil {
		evt := event.NewCatalogRefreshedEvent(result.ItemCount, result.Changed, s.now().UTC())
		if err := s.publisher.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}

	return result, nil
}

// Invalidate drops every cached entry
func (s *service) Invalidate() {
	s.cache.purge()
	logger.Debug(LogMsgCacheInvalidated)
}
