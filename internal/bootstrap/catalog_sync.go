package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/StrideShop_Go/internal/catalog"
)

// CatalogSyncer is the subset of catalog.Service used at startup
type CatalogSyncer interface {
	Sync(ctx context.Context, path string) (*catalog.SyncResult, error)
}

// SyncCatalog loads the catalog config and upserts it before the server
// takes traffic. An unchanged file is skipped by hash.
func SyncCatalog(ctx context.Context, syncer CatalogSyncer, path string) error {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	result, err := syncer.Sync(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if !result.Changed {
		slog.Info(LogMsgCatalogUnchanged, "item_count", result.ItemCount)
		return nil
	}

	slog.Info(LogMsgCatalogSynced,
		"items", result.ItemCount,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return nil
}
