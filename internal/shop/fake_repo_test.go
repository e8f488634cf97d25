package shop

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// memoryRepo is an in-memory repository.Shop. Each user has its own lock,
// held from GetUserStateForUpdate until Commit or Rollback, which mirrors
// SELECT ... FOR UPDATE. Writes are staged and applied on commit.
type memoryRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.UserState
	ledger  []domain.LedgerEntry
	locks   map[string]*sync.Mutex
	commits int

	// failOn makes the named tx operation fail with the mapped error, consuming
	// one entry per call until the slice is empty.
	failOn map[string][]error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users:  make(map[string]*domain.UserState),
		locks:  make(map[string]*sync.Mutex),
		failOn: make(map[string][]error),
	}
}

func (r *memoryRepo) addUser(userID string, coins int, shop domain.ShopState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = &domain.UserState{UserID: userID, Username: userID, Coins: coins, ShopData: shop.Clone()}
	r.locks[userID] = &sync.Mutex{}
}

func (r *memoryRepo) failNext(op string, errs ...error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failOn[op] = append(r.failOn[op], errs...)
}

func (r *memoryRepo) injected(op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	errs := r.failOn[op]
	if len(errs) == 0 {
		return nil
	}
	r.failOn[op] = errs[1:]
	return errs[0]
}

func (r *memoryRepo) snapshot(userID string) domain.UserState {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[userID]
	out := *u
	out.ShopData = u.ShopData.Clone()
	out.Inventory = append([]domain.InventoryEntry(nil), u.Inventory...)
	return out
}

func (r *memoryRepo) ledgerFor(userID string) []domain.LedgerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range r.ledger {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (r *memoryRepo) commitCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.commits
}

func (r *memoryRepo) GetUserState(ctx context.Context, userID string) (*domain.UserState, error) {
	if err := r.injected("GetUserState"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	_, ok := r.users[userID]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	s := r.snapshot(userID)
	return &s, nil
}

func (r *memoryRepo) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	if err := r.injected("BeginTx"); err != nil {
		return nil, err
	}
	return &memoryTx{repo: r}, nil
}

type memoryTx struct {
	repo   *memoryRepo
	lock   *sync.Mutex
	closed bool

	userID    string
	state     *domain.UserState
	inventory []domain.InventoryEntry
	merges    map[string]int
	ledger    []domain.LedgerEntry
}

func (t *memoryTx) GetUserStateForUpdate(ctx context.Context, userID string) (*domain.UserState, error) {
	if err := t.repo.injected("GetUserStateForUpdate"); err != nil {
		return nil, err
	}
	t.repo.mu.Lock()
	lock, ok := t.repo.locks[userID]
	t.repo.mu.Unlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	lock.Lock()
	t.lock = lock
	t.userID = userID

	s := t.repo.snapshot(userID)
	t.state = &s
	out := s
	out.ShopData = s.ShopData.Clone()
	return &out, nil
}

func (t *memoryTx) UpdateShopState(ctx context.Context, userID string, state domain.ShopState) error {
	if err := t.repo.injected("UpdateShopState"); err != nil {
		return err
	}
	t.state.ShopData = state.Clone()
	return nil
}

func (t *memoryTx) UpdateCoins(ctx context.Context, userID string, coins int) error {
	if err := t.repo.injected("UpdateCoins"); err != nil {
		return err
	}
	if coins < 0 {
		return domain.ErrInsufficientFunds
	}
	t.state.Coins = coins
	return nil
}

func (t *memoryTx) AppendInventoryEntry(ctx context.Context, userID string, entry domain.InventoryEntry) error {
	if err := t.repo.injected("AppendInventoryEntry"); err != nil {
		return err
	}
	t.inventory = append(t.inventory, entry)
	return nil
}

func (t *memoryTx) IncrementInventoryEntry(ctx context.Context, userID, itemID string, quantity int) (bool, error) {
	if err := t.repo.injected("IncrementInventoryEntry"); err != nil {
		return false, err
	}
	for _, e := range t.state.Inventory {
		if e.ItemID == itemID {
			if t.merges == nil {
				t.merges = make(map[string]int)
			}
			t.merges[itemID] += quantity
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	if err := t.repo.injected("AppendLedgerEntry"); err != nil {
		return err
	}
	t.ledger = append(t.ledger, entry)
	return nil
}

func (t *memoryTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if err := t.repo.injected("Commit"); err != nil {
		t.release()
		return err
	}

	if t.state != nil {
		t.repo.mu.Lock()
		u := t.repo.users[t.userID]
		u.Coins = t.state.Coins
		u.ShopData = t.state.ShopData.Clone()
		for itemID, qty := range t.merges {
			for i := range u.Inventory {
				if u.Inventory[i].ItemID == itemID {
					u.Inventory[i].Quantity += qty
					break
				}
			}
		}
		u.Inventory = append(u.Inventory, t.inventory...)
		t.repo.ledger = append(t.repo.ledger, t.ledger...)
		t.repo.commits++
		t.repo.mu.Unlock()
	}

	t.release()
	return nil
}

func (t *memoryTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.release()
	return nil
}

func (t *memoryTx) release() {
	t.closed = true
	if t.lock != nil {
		t.lock.Unlock()
		t.lock = nil
	}
}

var _ repository.Shop = (*memoryRepo)(nil)
