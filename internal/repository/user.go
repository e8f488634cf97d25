package repository

import (
	"context"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// CreateUser inserts a new user with an empty shop.
	// Returns domain.ErrUserAlreadyExists on a duplicate id.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	GetLedger(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)

	BeginTx(ctx context.Context) (ShopTx, error)
}
