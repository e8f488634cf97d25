package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// PurchaseResult is returned by a successful purchase
type PurchaseResult struct {
	Balance int                   `json:"balance"`
	Slot    domain.ShopSlot       `json:"slot"`
	Entry   domain.InventoryEntry `json:"entry"`
}

// Purchase buys one slot of the user's current shop. Funds check, debit,
// slot flag and inventory grant commit together or not at all.
// The stored shop is used as is; purchasing never triggers a rotation.
func (s *service) Purchase(ctx context.Context, userID, slotID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "user_id", userID, "slot_id", slotID)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if slotID == "" {
		return nil, fmt.Errorf(ErrMsgEmptySlotIDFmt, domain.ErrInvalidInput)
	}

	var result *PurchaseResult
	err := s.withRetry(ctx, "purchase", func(ctx context.Context) error {
		var err error
		result, err = s.purchaseOnce(ctx, userID, slotID)
		return err
	})
	if err != nil {
		if isRejection(err) {
			log.Info(LogMsgPurchaseRejected, "user_id", userID, "slot_id", slotID, "reason", err)
		}
		return nil, err
	}

	log.Info(LogMsgItemPurchased, "user_id", userID, "item_id", result.Slot.ItemID, "price", result.Slot.Price, "balance", result.Balance)
	s.publishAsync(ctx, event.NewShopItemPurchasedEvent(userID, result.Slot, result.Balance))

	return result, nil
}

func (s *service) purchaseOnce(ctx context.Context, userID, slotID string) (*PurchaseResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := tx.GetUserStateForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockUserStateFailed, err)
	}

	// 1. Validate against the locked snapshot
	idx := state.ShopData.FindSlot(slotID)
	if idx < 0 {
		return nil, fmt.Errorf(ErrMsgSlotNotFoundFmt, slotID, domain.ErrSlotNotFound)
	}
	slot := state.ShopData.Slots[idx]
	if slot.IsPurchased {
		return nil, fmt.Errorf(ErrMsgAlreadyPurchasedFmt, slotID, domain.ErrAlreadyPurchased)
	}
	if !state.CanAfford(slot.Price) {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, slot.Price, state.Coins, domain.ErrInsufficientFunds)
	}

	// 2. Debit and flag the slot
	balance := state.Coins - slot.Price
	if err := tx.UpdateCoins(ctx, userID, balance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateCoinsFailed, err)
	}

	shop := state.ShopData.Clone()
	shop.Slots[idx].IsPurchased = true
	if err := tx.UpdateShopState(ctx, userID, shop); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateShopFailed, err)
	}

	// 3. Grant the item
	now := s.now()
	entry, err := s.grantItem(ctx, tx, userID, slot.ItemID, now)
	if err != nil {
		return nil, err
	}

	// 4. Journal
	ledger := domain.LedgerEntry{
		ID:           s.newID(),
		UserID:       userID,
		Delta:        -slot.Price,
		BalanceAfter: balance,
		Reason:       domain.LedgerReasonShopPurchase,
		CreatedAt:    now,
	}
	if err := tx.AppendLedgerEntry(ctx, ledger); err != nil {
		return nil, fmt.Errorf(ErrMsgAppendLedgerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &PurchaseResult{
		Balance: balance,
		Slot:    shop.Slots[idx],
		Entry:   entry,
	}, nil
}

// grantItem appends a new entry, or in merge mode increments an existing one.
// A merged grant returns an entry without an ID.
func (s *service) grantItem(ctx context.Context, tx repository.ShopTx, userID, itemID string, now time.Time) (domain.InventoryEntry, error) {
	entry := domain.InventoryEntry{
		ItemID:     itemID,
		Quantity:   1,
		AcquiredAt: now,
	}

	if s.inventoryMode == domain.InventoryModeMerge {
		merged, err := tx.IncrementInventoryEntry(ctx, userID, itemID, entry.Quantity)
		if err != nil {
			return entry, fmt.Errorf(ErrMsgAddInventoryFailed, err)
		}
		if merged {
			return entry, nil
		}
	}

	entry.ID = s.newID()
	if err := tx.AppendInventoryEntry(ctx, userID, entry); err != nil {
		return entry, fmt.Errorf(ErrMsgAddInventoryFailed, err)
	}
	return entry, nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrSlotNotFound) ||
		errors.Is(err, domain.ErrAlreadyPurchased) ||
		errors.Is(err, domain.ErrInsufficientFunds)
}
