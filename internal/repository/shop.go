package repository

import (
	"context"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// Shop defines persistence for the per-user shop aggregate
type Shop interface {
	// GetUserState reads the aggregate without locking. Used for the idempotent
	// fast path of a shop read.
	GetUserState(ctx context.Context, userID string) (*domain.UserState, error)

	BeginTx(ctx context.Context) (ShopTx, error)
}

// ShopTx is a transaction scoped to one or more user aggregates.
// GetUserStateForUpdate locks the user row until Commit or Rollback.
type ShopTx interface {
	Tx
	GetUserStateForUpdate(ctx context.Context, userID string) (*domain.UserState, error)
	UpdateShopState(ctx context.Context, userID string, state domain.ShopState) error
	UpdateCoins(ctx context.Context, userID string, coins int) error
	AppendInventoryEntry(ctx context.Context, userID string, entry domain.InventoryEntry) error
	// IncrementInventoryEntry adds quantity to an existing entry for itemID.
	// Returns false when the user holds no entry for the item.
	IncrementInventoryEntry(ctx context.Context, userID, itemID string, quantity int) (bool, error)
	AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
}
