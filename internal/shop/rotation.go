package shop

import (
	"context"
	"fmt"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// GetShop returns the user's current shop, rotating it first when the
// 24h window has elapsed. Within a window repeated calls return the same slots.
func (s *service) GetShop(ctx context.Context, userID string) (*domain.ShopState, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetShopCalled, "user_id", userID)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	state, err := s.repo.GetUserState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserStateFailed, err)
	}

	if !state.ShopData.IsExpired(s.now()) {
		shop := state.ShopData.Clone()
		return &shop, nil
	}

	return s.rotate(ctx, userID)
}

// rotate regenerates the shop under the user row lock. Expiry is checked again
// once the lock is held so concurrent callers rotate at most once per window.
func (s *service) rotate(ctx context.Context, userID string) (*domain.ShopState, error) {
	log := logger.FromContext(ctx)

	items, err := s.catalog.ListSellable(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCatalogFailed, err)
	}
	eligible := filterEligible(items)

	var (
		result  domain.ShopState
		rotated bool
	)
	err = s.withRetry(ctx, "rotate", func(ctx context.Context) error {
		rotated = false

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		locked, err := tx.GetUserStateForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgLockUserStateFailed, err)
		}

		now := s.now()
		if !locked.ShopData.IsExpired(now) {
			result = locked.ShopData.Clone()
			return nil
		}

		next := domain.ShopState{
			Slots:         s.buildSlots(eligible),
			LastResetDate: now,
		}
		if err := tx.UpdateShopState(ctx, userID, next); err != nil {
			return fmt.Errorf(ErrMsgUpdateShopFailed, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
		}

		result = next
		rotated = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !rotated {
		log.Info(LogMsgRotationRaceLost, "user_id", userID)
		return &result, nil
	}

	if len(result.Slots) == 0 {
		log.Warn(LogMsgEmptyCatalog, "user_id", userID)
	}
	log.Info(LogMsgShopRotated, "user_id", userID, "slots", len(result.Slots), "reset_at", result.LastResetDate)
	s.publishAsync(ctx, event.NewShopRotatedEvent(userID, len(result.Slots), result.LastResetDate))

	return &result, nil
}

// buildSlots samples min(ShopSlotCount, len(eligible)) distinct items and prices them
func (s *service) buildSlots(eligible []domain.CatalogItem) []domain.ShopSlot {
	picked := s.sample(eligible, domain.ShopSlotCount)

	slots := make([]domain.ShopSlot, 0, len(picked))
	for _, item := range picked {
		slots = append(slots, domain.ShopSlot{
			ID:          s.newID(),
			ItemID:      item.ID,
			Price:       domain.PriceFor(item),
			IsPurchased: false,
		})
	}
	return slots
}

// sample draws n items uniformly without replacement using a partial
// Fisher-Yates shuffle over a copy of items.
func (s *service) sample(items []domain.CatalogItem, n int) []domain.CatalogItem {
	if n > len(items) {
		n = len(items)
	}
	pool := make([]domain.CatalogItem, len(items))
	copy(pool, items)

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func filterEligible(items []domain.CatalogItem) []domain.CatalogItem {
	eligible := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.IsSellable() {
			eligible = append(eligible, item)
		}
	}
	return eligible
}
