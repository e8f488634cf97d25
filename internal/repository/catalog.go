package repository

import (
	"context"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// Catalog defines the interface for catalog persistence
type Catalog interface {
	// ListSellableItems returns every catalog item, including those with a zero
	// sell price. Callers filter eligibility.
	ListSellableItems(ctx context.Context) ([]domain.CatalogItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	UpsertItem(ctx context.Context, item domain.CatalogItem) (inserted bool, err error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
