package user

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository, items ItemLookup, pub event.Publisher, startingCoins int) *service {
	svc := NewService(repo, items, pub, Config{
		StartingCoins: startingCoins,
		Retry:         repository.RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond},
	}).(*service)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "00000000-0000-0000-0000-000000000001" }
	return svc
}

// =============================================================================
// Register
// =============================================================================

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	repo.On("CreateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "u1" && u.Username == "mira" && u.Coins == 100
	})).Return(nil)
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("AppendLedgerEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Delta == 100 && e.BalanceAfter == 100 && e.Reason == domain.LedgerReasonSignupBonus
	})).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(errors.New(domain.ErrMsgTxClosed))

	svc := newTestService(repo, nil, nil, 100)
	user, err := svc.Register(ctx, "u1", "mira")
	require.NoError(t, err)
	assert.Equal(t, 100, user.Coins)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestRegister_ZeroStartingCoinsSkipsLedger(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	repo.On("CreateUser", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo, nil, nil, 0)
	_, err := svc.Register(ctx, "u1", "mira")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestRegister_LedgerFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	repo.On("CreateUser", ctx, mock.Anything).Return(nil)
	repo.On("BeginTx", ctx).Return(nil, domain.ErrStoreUnavailable)

	svc := newTestService(repo, nil, nil, 50)
	user, err := svc.Register(ctx, "u1", "mira")
	require.NoError(t, err)
	assert.Equal(t, 50, user.Coins)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		username string
		repoErr  error
		wantErr  error
	}{
		{name: "empty id", userID: "", username: "mira", wantErr: domain.ErrInvalidInput},
		{name: "empty username", userID: "u1", username: "", wantErr: domain.ErrInvalidInput},
		{name: "long username", userID: "u1", username: strings.Repeat("é", MaxUsernameLength+1), wantErr: domain.ErrInvalidInput},
		{name: "duplicate", userID: "u1", username: "mira", repoErr: domain.ErrUserAlreadyExists, wantErr: domain.ErrUserAlreadyExists},
		{name: "store down", userID: "u1", username: "mira", repoErr: domain.ErrStoreUnavailable, wantErr: domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &MockRepository{}
			repo.On("CreateUser", ctx, mock.Anything).Return(tt.repoErr).Maybe()

			svc := newTestService(repo, nil, nil, 100)
			_, err := svc.Register(ctx, tt.userID, tt.username)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// =============================================================================
// GetProfile
// =============================================================================

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	items := &MockItemLookup{}

	repo.On("GetUserByID", ctx, "u1").Return(&domain.User{ID: "u1", Username: "mira", Coins: 42}, nil)
	repo.On("GetInventory", ctx, "u1").Return([]domain.InventoryEntry{
		{ID: "e1", ItemID: "headlamp", Quantity: 1},
		{ID: "e2", ItemID: "headlamp", Quantity: 1},
		{ID: "e3", ItemID: "retired_item", Quantity: 1},
		{ID: "e4", ItemID: "flaky", Quantity: 1},
	}, nil)
	repo.On("GetLedger", ctx, "u1", ProfileLedgerLimit).Return(nil, nil)
	items.On("GetItem", ctx, "headlamp").Return(&domain.CatalogItem{ID: "headlamp", Name: "Headlamp"}, nil).Once()
	items.On("GetItem", ctx, "retired_item").Return(nil, domain.ErrItemNotFound)
	items.On("GetItem", ctx, "flaky").Return(nil, domain.ErrStoreUnavailable)

	svc := newTestService(repo, items, nil, 0)
	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 42, profile.User.Coins)
	require.Len(t, profile.Inventory, 4)
	assert.Equal(t, "Headlamp", profile.Inventory[0].Name)
	assert.Equal(t, "Headlamp", profile.Inventory[1].Name)
	assert.Equal(t, "retired_item", profile.Inventory[2].Name)
	assert.Equal(t, "flaky", profile.Inventory[3].Name)
	assert.NotNil(t, profile.RecentLedger)
	items.AssertNumberOfCalls(t, "GetItem", 3)
}

func TestGetProfile_UserNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	repo.On("GetUserByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound)

	svc := newTestService(repo, nil, nil, 0)
	_, err := svc.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// =============================================================================
// AwardCoins
// =============================================================================

func TestAwardCoins_Success(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}
	pub := &MockPublisher{}

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetUserStateForUpdate", ctx, "u1").Return(&domain.UserState{UserID: "u1", Coins: 30}, nil)
	tx.On("UpdateCoins", ctx, "u1", 55).Return(nil)
	tx.On("AppendLedgerEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Delta == 25 && e.BalanceAfter == 55 && e.Reason == "weekly_streak"
	})).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(errors.New(domain.ErrMsgTxClosed))
	pub.On("Publish", ctx, mock.MatchedBy(func(e event.Event) bool {
		return e.Type == event.CoinsAwarded
	})).Return(nil)

	svc := newTestService(repo, nil, pub, 0)
	res, err := svc.AwardCoins(ctx, "u1", 25, "weekly_streak")
	require.NoError(t, err)
	assert.Equal(t, 55, res.Balance)
	assert.Equal(t, fixedNow, res.Entry.CreatedAt)

	tx.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestAwardCoins_DefaultReason(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetUserStateForUpdate", ctx, "u1").Return(&domain.UserState{UserID: "u1"}, nil)
	tx.On("UpdateCoins", ctx, "u1", 5).Return(nil)
	tx.On("AppendLedgerEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Reason == domain.LedgerReasonAward
	})).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := newTestService(repo, nil, nil, 0)
	_, err := svc.AwardCoins(ctx, "u1", 5, "")
	require.NoError(t, err)
}

func TestAwardCoins_Validation(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		amount int
		reason string
	}{
		{name: "empty user", userID: "", amount: 5},
		{name: "zero", userID: "u1", amount: 0},
		{name: "negative", userID: "u1", amount: -10},
		{name: "too large", userID: "u1", amount: domain.MaxAwardAmount + 1},
		{name: "long reason", userID: "u1", amount: 5, reason: strings.Repeat("x", MaxReasonLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			svc := newTestService(repo, nil, nil, 0)
			_, err := svc.AwardCoins(context.Background(), tt.userID, tt.amount, tt.reason)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestAwardCoins_Overflow(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetUserStateForUpdate", ctx, "u1").Return(&domain.UserState{UserID: "u1", Coins: math.MaxInt32 - 1}, nil)
	tx.On("Rollback", ctx).Return(nil)

	svc := newTestService(repo, nil, nil, 0)
	_, err := svc.AwardCoins(ctx, "u1", 2, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	tx.AssertNotCalled(t, "UpdateCoins", mock.Anything, mock.Anything, mock.Anything)
}

func TestAwardCoins_RetriesConflict(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	first, second := &MockTx{}, &MockTx{}

	repo.On("BeginTx", ctx).Return(first, nil).Once()
	repo.On("BeginTx", ctx).Return(second, nil).Once()

	for _, tx := range []*MockTx{first, second} {
		tx.On("GetUserStateForUpdate", ctx, "u1").Return(&domain.UserState{UserID: "u1", Coins: 10}, nil)
		tx.On("UpdateCoins", ctx, "u1", 20).Return(nil)
		tx.On("AppendLedgerEntry", ctx, mock.Anything).Return(nil)
		tx.On("Rollback", ctx).Return(nil)
	}
	first.On("Commit", ctx).Return(domain.ErrTransactionConflict)
	second.On("Commit", ctx).Return(nil)

	svc := newTestService(repo, nil, nil, 0)
	res, err := svc.AwardCoins(ctx, "u1", 10, "")
	require.NoError(t, err)
	assert.Equal(t, 20, res.Balance)
	repo.AssertNumberOfCalls(t, "BeginTx", 2)
}

func TestAwardCoins_UserNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	tx := &MockTx{}
	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetUserStateForUpdate", ctx, "ghost").Return(nil, domain.ErrUserNotFound)
	tx.On("Rollback", ctx).Return(nil)

	svc := newTestService(repo, nil, nil, 0)
	_, err := svc.AwardCoins(ctx, "ghost", 10, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	repo.AssertNumberOfCalls(t, "BeginTx", 1)
}
