package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListSellableItems returns every catalog item ordered by id
func (r *CatalogRepository) ListSellableItems(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.db.Query(ctx, sqlSelectCatalog)
	if err != nil {
		return nil, wrap(ErrMsgListCatalogFailed, err)
	}
	items, err := pgx.CollectRows(rows, scanCatalogItem)
	if err != nil {
		return nil, wrap(ErrMsgListCatalogFailed, err)
	}
	return items, nil
}

// GetItem returns a single catalog item
func (r *CatalogRepository) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	rows, err := r.db.Query(ctx, sqlSelectCatalogItem, itemID)
	if err != nil {
		return nil, wrap(ErrMsgGetCatalogItemFailed, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, scanCatalogItem)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, wrap(ErrMsgGetCatalogItemFailed, err)
	}
	return &item, nil
}

// UpsertItem inserts or updates an item and reports whether it was new
func (r *CatalogRepository) UpsertItem(ctx context.Context, item domain.CatalogItem) (bool, error) {
	var inserted bool
	err := r.db.QueryRow(ctx, sqlUpsertCatalogItem, item.ID, item.Name, item.Description, item.SellPrice).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf(ErrMsgUpsertCatalogFailed, item.ID, classify(err))
	}
	return inserted, nil
}

// GetSyncMetadata returns pgx.ErrNoRows wrapped when the config was never synced
func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var m domain.SyncMetadata
	err := r.db.QueryRow(ctx, sqlSelectSyncMetadata, configName).
		Scan(&m.ConfigName, &m.LastSyncTime, &m.FileHash, &m.FileModTime)
	if err != nil {
		return nil, wrap(ErrMsgGetSyncMetadataFailed, err)
	}
	return &m, nil
}

// UpsertSyncMetadata records the last successful sync of a config file
func (r *CatalogRepository) UpsertSyncMetadata(ctx context.Context, m *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, sqlUpsertSyncMetadata, m.ConfigName, m.LastSyncTime, m.FileHash, m.FileModTime)
	if err != nil {
		return wrap(ErrMsgUpsertSyncMetaFailed, err)
	}
	return nil
}

func scanCatalogItem(row pgx.CollectableRow) (domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.SellPrice)
	return item, err
}
