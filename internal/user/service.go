package user

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// Service defines user account operations
type Service interface {
	Register(ctx context.Context, userID, username string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	AwardCoins(ctx context.Context, userID string, amount int, reason string) (*AwardResult, error)
}

// ItemLookup resolves catalog items for display
type ItemLookup interface {
	GetItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
}

// Profile is a user's balance, inventory and recent ledger
type Profile struct {
	User         domain.User          `json:"user"`
	Inventory    []InventoryItem      `json:"inventory"`
	RecentLedger []domain.LedgerEntry `json:"recent_ledger"`
}

// InventoryItem is an inventory entry with its display name
type InventoryItem struct {
	domain.InventoryEntry
	Name string `json:"name"`
}

// AwardResult is returned by AwardCoins
type AwardResult struct {
	Balance int                `json:"balance"`
	Entry   domain.LedgerEntry `json:"entry"`
}

// Config holds tunables for the user service
type Config struct {
	StartingCoins int
	Retry         repository.RetryPolicy
}

type service struct {
	repo      repository.User
	items     ItemLookup
	publisher event.Publisher
	cfg       Config
	now       func() time.Time
	newID     func() string
}

// NewService creates a user service. items and publisher may be nil.
func NewService(repo repository.User, items ItemLookup, publisher event.Publisher, cfg Config) Service {
	return &service{
		repo:      repo,
		items:     items,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Register creates the user with the starting balance and an empty shop,
// which the first shop read rotates.
func (s *service) Register(ctx context.Context, userID, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "user_id", userID, "username", username)

	if userID == "" {
		return nil, fmt.Errorf(ErrMsgEmptyUserIDFmt, domain.ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(username); n == 0 || n > MaxUsernameLength {
		return nil, fmt.Errorf(ErrMsgInvalidUsernameFmt, MaxUsernameLength, domain.ErrInvalidInput)
	}

	user := &domain.User{
		ID:       userID,
		Username: username,
		Coins:    s.cfg.StartingCoins,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateUserFailed, err)
	}

	if user.Coins > 0 {
		if err := s.journalSignup(ctx, user); err != nil {
			log.Warn(LogMsgSignupLedgerFailed, "user_id", userID, "error", err)
		}
	}

	log.Info(LogMsgUserRegistered, "user_id", userID, "coins", user.Coins)
	return user, nil
}

// journalSignup records the starting balance so the ledger sums to the balance
func (s *service) journalSignup(ctx context.Context, user *domain.User) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry := domain.LedgerEntry{
		ID:           s.newID(),
		UserID:       user.ID,
		Delta:        user.Coins,
		BalanceAfter: user.Coins,
		Reason:       domain.LedgerReasonSignupBonus,
		CreatedAt:    s.now(),
	}
	if err := tx.AppendLedgerEntry(ctx, entry); err != nil {
		return fmt.Errorf(ErrMsgAppendLedgerFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return nil
}

// GetProfile returns balance, inventory with resolved names and the recent ledger
func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetProfileCalled, "user_id", userID)

	if userID == "" {
		return nil, fmt.Errorf(ErrMsgEmptyUserIDFmt, domain.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	entries, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	ledger, err := s.repo.GetLedger(ctx, userID, ProfileLedgerLimit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLedgerFailed, err)
	}

	profile := &Profile{
		User:         *user,
		Inventory:    make([]InventoryItem, 0, len(entries)),
		RecentLedger: ledger,
	}
	if profile.RecentLedger == nil {
		profile.RecentLedger = []domain.LedgerEntry{}
	}

	names := make(map[string]string)
	for _, e := range entries {
		profile.Inventory = append(profile.Inventory, InventoryItem{
			InventoryEntry: e,
			Name:           s.itemName(ctx, e.ItemID, names),
		})
	}

	return profile, nil
}

// itemName falls back to the id when the item left the catalog
func (s *service) itemName(ctx context.Context, itemID string, memo map[string]string) string {
	if name, ok := memo[itemID]; ok {
		return name
	}
	name := itemID
	if s.items != nil {
		item, err := s.items.GetItem(ctx, itemID)
		switch {
		case err == nil && item.Name != "":
			name = item.Name
		case err != nil && !errors.Is(err, domain.ErrItemNotFound):
			logger.FromContext(ctx).Warn(LogMsgItemLookupFailed, "item_id", itemID, "error", err)
		}
	}
	memo[itemID] = name
	return name
}

// AwardCoins credits amount to the user and journals it. Debits only happen
// through shop purchases.
func (s *service) AwardCoins(ctx context.Context, userID string, amount int, reason string) (*AwardResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAwardCoinsCalled, "user_id", userID, "amount", amount, "reason", reason)

	if userID == "" {
		return nil, fmt.Errorf(ErrMsgEmptyUserIDFmt, domain.ErrInvalidInput)
	}
	if amount < 1 || amount > domain.MaxAwardAmount {
		return nil, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.MaxAwardAmount, domain.ErrInvalidInput)
	}
	if reason == "" {
		reason = domain.LedgerReasonAward
	}
	if len(reason) > MaxReasonLength {
		return nil, fmt.Errorf(ErrMsgInvalidReasonFmt, MaxReasonLength, domain.ErrInvalidInput)
	}

	var result *AwardResult
	err := repository.WithRetry(ctx, s.cfg.Retry, "award_coins", func(ctx context.Context) error {
		var err error
		result, err = s.awardOnce(ctx, userID, amount, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCoinsAwarded, "user_id", userID, "amount", amount, "balance", result.Balance)

	if s.publisher != nil {
		evt := event.NewCoinsAwardedEvent(userID, amount, reason, result.Balance)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}

	return result, nil
}

func (s *service) awardOnce(ctx context.Context, userID string, amount int, reason string) (*AwardResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := tx.GetUserStateForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockUserFailed, err)
	}

	// coins is an INTEGER column
	if state.Coins > math.MaxInt32-amount {
		return nil, fmt.Errorf(ErrMsgBalanceOverflowFmt, state.Coins, amount, domain.ErrInvalidInput)
	}
	balance := state.Coins + amount

	if err := tx.UpdateCoins(ctx, userID, balance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateCoinsFailed, err)
	}

	entry := domain.LedgerEntry{
		ID:           s.newID(),
		UserID:       userID,
		Delta:        amount,
		BalanceAfter: balance,
		Reason:       reason,
		CreatedAt:    s.now(),
	}
	if err := tx.AppendLedgerEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf(ErrMsgAppendLedgerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	return &AwardResult{Balance: balance, Entry: entry}, nil
}
