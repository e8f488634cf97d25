package shop

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testCatalog(n int) []domain.CatalogItem {
	items := make([]domain.CatalogItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, domain.CatalogItem{
			ID:        "item-" + string(rune('a'+i-1)),
			Name:      "Item",
			SellPrice: i * 5,
		})
	}
	return items
}

type fixture struct {
	repo      *memoryRepo
	catalog   *MockCatalog
	publisher *recordingPublisher
	clock     *fakeClock
	svc       Service
}

func newFixture(t *testing.T, items []domain.CatalogItem, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		repo:      newMemoryRepo(),
		catalog:   &MockCatalog{},
		publisher: &recordingPublisher{},
		clock:     newFakeClock(baseTime),
	}
	f.catalog.On("ListSellable", mock.Anything).Return(items, nil).Maybe()

	defaults := []Option{
		WithClock(f.clock.Now),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithIDGenerator(sequentialIDs("id")),
		WithRetryPolicy(repository.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}),
	}
	f.svc = NewService(f.repo, f.catalog, f.publisher, append(defaults, opts...)...)
	t.Cleanup(func() { _ = f.svc.Shutdown(context.Background()) })
	return f
}

func (f *fixture) shopWith(slots ...domain.ShopSlot) domain.ShopState {
	return domain.ShopState{Slots: slots, LastResetDate: f.clock.Now()}
}

// =============================================================================
// Rotation
// =============================================================================

func TestGetShop_NeverGeneratedRotates(t *testing.T) {
	items := testCatalog(10)
	f := newFixture(t, items)
	f.repo.addUser("u1", 100, domain.ShopState{})

	shop, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, shop.Slots, domain.ShopSlotCount)
	assert.Equal(t, baseTime, shop.LastResetDate)

	byID := make(map[string]domain.CatalogItem)
	for _, it := range items {
		byID[it.ID] = it
	}
	seenItems := make(map[string]bool)
	seenSlots := make(map[string]bool)
	for _, slot := range shop.Slots {
		item, ok := byID[slot.ItemID]
		require.True(t, ok, "slot references unknown item %s", slot.ItemID)
		assert.Equal(t, 2*item.SellPrice, slot.Price)
		assert.False(t, slot.IsPurchased)
		assert.False(t, seenItems[slot.ItemID], "items are sampled without replacement")
		assert.False(t, seenSlots[slot.ID], "slot ids are unique")
		seenItems[slot.ItemID] = true
		seenSlots[slot.ID] = true
	}

	stored := f.repo.snapshot("u1")
	assert.Equal(t, *shop, stored.ShopData)
}

func TestGetShop_Idempotent(t *testing.T) {
	f := newFixture(t, testCatalog(10))
	f.repo.addUser("u1", 100, domain.ShopState{})

	first, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)

	f.clock.Advance(23*time.Hour + 59*time.Minute)
	second, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.repo.commitCount(), "no write inside the window")
}

func TestGetShop_RotatesAtWindowBoundary(t *testing.T) {
	f := newFixture(t, testCatalog(10))
	f.repo.addUser("u1", 100, domain.ShopState{})

	first, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)
	_, err = f.svc.Purchase(context.Background(), "u1", first.Slots[0].ID)
	require.NoError(t, err)

	f.clock.Advance(domain.ShopResetInterval)
	second, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, baseTime.Add(domain.ShopResetInterval), second.LastResetDate)
	require.Len(t, second.Slots, domain.ShopSlotCount)
	for _, slot := range second.Slots {
		assert.False(t, slot.IsPurchased)
		assert.NotContains(t, slotIDs(first.Slots), slot.ID, "fresh slot ids after rotation")
	}
}

func TestGetShop_SkipsUnsellableItems(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "free-a", SellPrice: 0},
		{ID: "sword", SellPrice: 10},
		{ID: "free-b", SellPrice: 0},
		{ID: "shield", SellPrice: 7},
	}
	f := newFixture(t, items)
	f.repo.addUser("u1", 100, domain.ShopState{})

	shop, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, shop.Slots, 2, "min(6, eligible) slots")
	assert.ElementsMatch(t, []string{"sword", "shield"}, itemIDs(shop.Slots))
}

func TestGetShop_EmptyCatalog(t *testing.T) {
	f := newFixture(t, []domain.CatalogItem{})
	f.repo.addUser("u1", 100, domain.ShopState{})

	shop, err := f.svc.GetShop(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, shop.Slots)
	assert.Equal(t, baseTime, shop.LastResetDate)
}

func TestGetShop_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t, testCatalog(3))
		_, err := f.svc.GetShop(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("empty user id", func(t *testing.T) {
		f := newFixture(t, testCatalog(3))
		_, err := f.svc.GetShop(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("catalog failure leaves shop untouched", func(t *testing.T) {
		f := &fixture{repo: newMemoryRepo(), catalog: &MockCatalog{}, clock: newFakeClock(baseTime)}
		f.catalog.On("ListSellable", mock.Anything).Return(nil, errors.New("catalog down"))
		f.svc = NewService(f.repo, f.catalog, nil, WithClock(f.clock.Now))
		f.repo.addUser("u1", 100, domain.ShopState{})

		_, err := f.svc.GetShop(context.Background(), "u1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog down")
		assert.True(t, f.repo.snapshot("u1").ShopData.LastResetDate.IsZero())
	})
}

func TestGetShop_ConcurrentRotationHappensOnce(t *testing.T) {
	f := newFixture(t, testCatalog(10))
	f.repo.addUser("u1", 100, domain.ShopState{})

	const workers = 16
	results := make([]*domain.ShopState, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			shop, err := f.svc.GetShop(context.Background(), "u1")
			assert.NoError(t, err)
			results[i] = shop
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, f.repo.commitCount())
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, results[0].Slots, r.Slots)
	}

	require.NoError(t, f.svc.Shutdown(context.Background()))
	assert.Len(t, f.publisher.ofType(event.ShopRotated), 1)
}

func TestSample_UniformWithoutReplacement(t *testing.T) {
	items := testCatalog(10)
	s := &service{rng: rand.New(rand.NewPCG(42, 42))}

	counts := make(map[string]int)
	const rounds = 5000
	for i := 0; i < rounds; i++ {
		picked := s.sample(items, domain.ShopSlotCount)
		require.Len(t, picked, domain.ShopSlotCount)
		seen := make(map[string]bool)
		for _, it := range picked {
			require.False(t, seen[it.ID])
			seen[it.ID] = true
			counts[it.ID]++
		}
	}

	// Each item is expected in 6/10 of rounds
	expected := float64(rounds) * float64(domain.ShopSlotCount) / float64(len(items))
	for _, it := range items {
		assert.InDelta(t, expected, float64(counts[it.ID]), expected*0.08, "item %s", it.ID)
	}
	assert.Equal(t, "item-a", items[0].ID, "input slice is not reordered")
}

// =============================================================================
// Purchase
// =============================================================================

func TestPurchase_Success(t *testing.T) {
	f := newFixture(t, nil)
	slot := domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}
	f.repo.addUser("u1", 100, f.shopWith(slot, domain.ShopSlot{ID: "s2", ItemID: "bow", Price: 60}))

	res, err := f.svc.Purchase(context.Background(), "u1", "s1")
	require.NoError(t, err)

	assert.Equal(t, 60, res.Balance)
	assert.True(t, res.Slot.IsPurchased)
	assert.Equal(t, "sword", res.Entry.ItemID)
	assert.Equal(t, 1, res.Entry.Quantity)
	assert.NotEmpty(t, res.Entry.ID)

	stored := f.repo.snapshot("u1")
	assert.Equal(t, 60, stored.Coins)
	assert.True(t, stored.ShopData.Slots[0].IsPurchased)
	assert.False(t, stored.ShopData.Slots[1].IsPurchased)
	require.Len(t, stored.Inventory, 1)
	assert.Equal(t, "sword", stored.Inventory[0].ItemID)

	ledger := f.repo.ledgerFor("u1")
	require.Len(t, ledger, 1)
	assert.Equal(t, -40, ledger[0].Delta)
	assert.Equal(t, 60, ledger[0].BalanceAfter)
	assert.Equal(t, domain.LedgerReasonShopPurchase, ledger[0].Reason)

	require.NoError(t, f.svc.Shutdown(context.Background()))
	events := f.publisher.ofType(event.ShopItemPurchased)
	require.Len(t, events, 1)
	payload, err := event.DecodePayload[domain.ShopItemPurchasedPayload](events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "s1", payload.SlotID)
	assert.Equal(t, 60, payload.Balance)
}

func TestPurchase_ExactBalance(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.addUser("u1", 40, f.shopWith(domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}))

	res, err := f.svc.Purchase(context.Background(), "u1", "s1")
	require.NoError(t, err)
	assert.Zero(t, res.Balance)
}

func TestPurchase_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		coins   int
		slots   []domain.ShopSlot
		slotID  string
		wantErr error
	}{
		{
			name:    "unknown slot",
			coins:   100,
			slots:   []domain.ShopSlot{{ID: "s1", ItemID: "sword", Price: 40}},
			slotID:  "nope",
			wantErr: domain.ErrSlotNotFound,
		},
		{
			name:    "already purchased",
			coins:   100,
			slots:   []domain.ShopSlot{{ID: "s1", ItemID: "sword", Price: 40, IsPurchased: true}},
			slotID:  "s1",
			wantErr: domain.ErrAlreadyPurchased,
		},
		{
			name:    "insufficient funds",
			coins:   39,
			slots:   []domain.ShopSlot{{ID: "s1", ItemID: "sword", Price: 40}},
			slotID:  "s1",
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:    "empty slot id",
			coins:   100,
			slots:   []domain.ShopSlot{{ID: "s1", ItemID: "sword", Price: 40}},
			slotID:  "",
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.repo.addUser("u1", tt.coins, f.shopWith(tt.slots...))
			before := f.repo.snapshot("u1")

			res, err := f.svc.Purchase(context.Background(), "u1", tt.slotID)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, before, f.repo.snapshot("u1"), "failed purchase must not change state")
			assert.Empty(t, f.repo.ledgerFor("u1"))
		})
	}
}

func TestPurchase_UnknownUser(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.Purchase(context.Background(), "ghost", "s1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPurchase_ExpiredShopStillHonoured(t *testing.T) {
	f := newFixture(t, testCatalog(10))
	f.repo.addUser("u1", 100, f.shopWith(domain.ShopSlot{ID: "old", ItemID: "sword", Price: 10}))
	f.clock.Advance(48 * time.Hour)

	res, err := f.svc.Purchase(context.Background(), "u1", "old")
	require.NoError(t, err)
	assert.Equal(t, 90, res.Balance)

	stored := f.repo.snapshot("u1")
	assert.Equal(t, baseTime, stored.ShopData.LastResetDate, "purchase never rotates")
}

func TestPurchase_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.addUser("u1", 1000, f.shopWith(domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}))

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Purchase(context.Background(), "u1", "s1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrAlreadyPurchased):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, rejected)

	stored := f.repo.snapshot("u1")
	assert.Equal(t, 960, stored.Coins, "debited exactly once")
	assert.Len(t, stored.Inventory, 1)
	assert.Len(t, f.repo.ledgerFor("u1"), 1)
}

func TestPurchase_ConcurrentBalanceFloor(t *testing.T) {
	f := newFixture(t, nil)
	slots := make([]domain.ShopSlot, 0, domain.ShopSlotCount)
	for i := 0; i < domain.ShopSlotCount; i++ {
		slots = append(slots, domain.ShopSlot{ID: "s" + string(rune('1'+i)), ItemID: "gem", Price: 30})
	}
	f.repo.addUser("u1", 100, f.shopWith(slots...))

	var wg sync.WaitGroup
	for _, slot := range slots {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := f.svc.Purchase(context.Background(), "u1", id)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			}
		}(slot.ID)
	}
	wg.Wait()

	stored := f.repo.snapshot("u1")
	assert.Equal(t, 10, stored.Coins, "three purchases fit into 100 coins")
	assert.GreaterOrEqual(t, stored.Coins, 0)
	assert.Len(t, stored.Inventory, 3)
}

func TestPurchase_AtomicOnMidTransactionFailure(t *testing.T) {
	ops := []string{"UpdateShopState", "AppendInventoryEntry", "AppendLedgerEntry", "Commit"}
	for _, op := range ops {
		t.Run(op, func(t *testing.T) {
			f := newFixture(t, nil)
			f.repo.addUser("u1", 100, f.shopWith(domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}))
			before := f.repo.snapshot("u1")

			f.repo.failNext(op, errors.New("disk on fire"))
			_, err := f.svc.Purchase(context.Background(), "u1", "s1")
			require.Error(t, err)

			assert.Equal(t, before, f.repo.snapshot("u1"))
			assert.Empty(t, f.repo.ledgerFor("u1"))
		})
	}
}

func TestPurchase_RetriesTransientFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.addUser("u1", 100, f.shopWith(domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}))

	f.repo.failNext("Commit", domain.ErrTransactionConflict)
	f.repo.failNext("BeginTx", domain.ErrStoreUnavailable)

	res, err := f.svc.Purchase(context.Background(), "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Balance)
	assert.Len(t, f.repo.ledgerFor("u1"), 1)
}

func TestPurchase_RetryBudgetExhausted(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.addUser("u1", 100, f.shopWith(domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}))

	f.repo.failNext("Commit", domain.ErrTransactionConflict, domain.ErrTransactionConflict, domain.ErrTransactionConflict)

	_, err := f.svc.Purchase(context.Background(), "u1", "s1")
	assert.ErrorIs(t, err, domain.ErrTransactionConflict)
	assert.True(t, domain.IsTransient(err))
	assert.Equal(t, 100, f.repo.snapshot("u1").Coins)
}

func TestPurchase_CancelledDuringBackoff(t *testing.T) {
	f := newFixture(t, nil, WithRetryPolicy(repository.RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}))
	f.repo.addUser("u1", 100, f.shopWith(domain.ShopSlot{ID: "s1", ItemID: "sword", Price: 40}))
	f.repo.failNext("Commit", domain.ErrTransactionConflict)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.svc.Purchase(ctx, "u1", "s1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPurchase_InventoryModes(t *testing.T) {
	t.Run("append creates one entry per purchase", func(t *testing.T) {
		f := newFixture(t, nil)
		f.repo.addUser("u1", 100, f.shopWith(
			domain.ShopSlot{ID: "s1", ItemID: "gem", Price: 10},
			domain.ShopSlot{ID: "s2", ItemID: "gem", Price: 10},
		))

		_, err := f.svc.Purchase(context.Background(), "u1", "s1")
		require.NoError(t, err)
		_, err = f.svc.Purchase(context.Background(), "u1", "s2")
		require.NoError(t, err)

		assert.Len(t, f.repo.snapshot("u1").Inventory, 2)
	})

	t.Run("merge increments existing entry", func(t *testing.T) {
		f := newFixture(t, nil, WithInventoryMode(domain.InventoryModeMerge))
		f.repo.addUser("u1", 100, f.shopWith(
			domain.ShopSlot{ID: "s1", ItemID: "gem", Price: 10},
			domain.ShopSlot{ID: "s2", ItemID: "gem", Price: 10},
		))

		first, err := f.svc.Purchase(context.Background(), "u1", "s1")
		require.NoError(t, err)
		assert.NotEmpty(t, first.Entry.ID)

		second, err := f.svc.Purchase(context.Background(), "u1", "s2")
		require.NoError(t, err)
		assert.Empty(t, second.Entry.ID)

		inv := f.repo.snapshot("u1").Inventory
		require.Len(t, inv, 1)
		assert.Equal(t, 2, inv[0].Quantity)
	})
}

// =============================================================================
// Countdown
// =============================================================================

func TestGetCountdown(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.addUser("u1", 100, f.shopWith())
	f.repo.addUser("fresh", 100, domain.ShopState{})

	f.clock.Advance(20 * time.Hour)
	c, err := f.svc.GetCountdown(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, c.Remaining)
	assert.Equal(t, int64(4*3600), c.RemainingSeconds)
	assert.Equal(t, baseTime.Add(24*time.Hour), c.NextResetAt)

	f.clock.Advance(10 * time.Hour)
	c, err = f.svc.GetCountdown(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, c.Remaining, "never negative")

	c, err = f.svc.GetCountdown(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Zero(t, c.Remaining)
	assert.True(t, c.NextResetAt.IsZero())

	assert.Zero(t, f.repo.commitCount(), "countdown never writes")
}

func slotIDs(slots []domain.ShopSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ID)
	}
	return out
}

func itemIDs(slots []domain.ShopSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ItemID)
	}
	return out
}
