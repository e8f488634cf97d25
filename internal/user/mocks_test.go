package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// MockRepository implements repository.User for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) GetLedger(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ShopTx), args.Error(1)
}

// MockTx implements repository.ShopTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetUserStateForUpdate(ctx context.Context, userID string) (*domain.UserState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserState), args.Error(1)
}

func (m *MockTx) UpdateShopState(ctx context.Context, userID string, state domain.ShopState) error {
	return m.Called(ctx, userID, state).Error(0)
}

func (m *MockTx) UpdateCoins(ctx context.Context, userID string, coins int) error {
	return m.Called(ctx, userID, coins).Error(0)
}

func (m *MockTx) AppendInventoryEntry(ctx context.Context, userID string, entry domain.InventoryEntry) error {
	return m.Called(ctx, userID, entry).Error(0)
}

func (m *MockTx) IncrementInventoryEntry(ctx context.Context, userID, itemID string, quantity int) (bool, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return m.Called(ctx, entry).Error(0)
}

// MockItemLookup implements ItemLookup for testing
type MockItemLookup struct {
	mock.Mock
}

func (m *MockItemLookup) GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	return m.Called(ctx, evt).Error(0)
}
