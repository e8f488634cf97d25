package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// UserRepository implements repository.User and repository.Shop for PostgreSQL.
// The shop document lives on the user row so one row lock covers coins and slots.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// UserTx implements repository.ShopTx
type UserTx struct {
	tx pgx.Tx
}

// BeginTx starts a new read-committed transaction. Row locks taken with
// GetUserStateForUpdate serialize writers on the same user.
func (r *UserRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrap(ErrMsgBeginTxFailed, err)
	}
	return &UserTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *UserTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *UserTx) Rollback(ctx context.Context) error {
	return classify(t.tx.Rollback(ctx))
}

// GetUserState reads the aggregate without a lock
func (r *UserRepository) GetUserState(ctx context.Context, userID string) (*domain.UserState, error) {
	return scanUserState(ctx, r.db, sqlSelectUserState, userID)
}

// GetUserStateForUpdate reads the aggregate and locks the user row
func (t *UserTx) GetUserStateForUpdate(ctx context.Context, userID string) (*domain.UserState, error) {
	return scanUserState(ctx, t.tx, sqlSelectUserStateForUpdate, userID)
}

// UpdateShopState replaces the whole shop document
func (t *UserTx) UpdateShopState(ctx context.Context, userID string, state domain.ShopState) error {
	if state.Slots == nil {
		state.Slots = []domain.ShopSlot{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeShopFailed, err)
	}
	tag, err := t.tx.Exec(ctx, sqlUpdateShopData, userID, data)
	if err != nil {
		return wrap(ErrMsgUpdateShopFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateCoins sets the balance. The schema rejects negative balances.
func (t *UserTx) UpdateCoins(ctx context.Context, userID string, coins int) error {
	tag, err := t.tx.Exec(ctx, sqlUpdateCoins, userID, coins)
	if err != nil {
		return wrap(ErrMsgUpdateCoinsFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AppendInventoryEntry inserts a new inventory entry
func (t *UserTx) AppendInventoryEntry(ctx context.Context, userID string, entry domain.InventoryEntry) error {
	id, err := parseEntryID(entry.ID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, sqlInsertInventoryEntry, id, userID, entry.ItemID, entry.Quantity, entry.AcquiredAt); err != nil {
		return wrap(ErrMsgInsertInventoryFailed, err)
	}
	return nil
}

// IncrementInventoryEntry merges quantity into the oldest entry for itemID
func (t *UserTx) IncrementInventoryEntry(ctx context.Context, userID, itemID string, quantity int) (bool, error) {
	tag, err := t.tx.Exec(ctx, sqlIncrementInventoryEntry, userID, itemID, quantity)
	if err != nil {
		return false, wrap(ErrMsgIncrementInventoryFail, err)
	}
	return tag.RowsAffected() > 0, nil
}

// AppendLedgerEntry journals a balance mutation
func (t *UserTx) AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	id, err := parseEntryID(entry.ID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, sqlInsertLedgerEntry,
		id, entry.UserID, entry.Delta, entry.BalanceAfter, entry.Reason, entry.CreatedAt)
	if err != nil {
		return wrap(ErrMsgInsertLedgerFailed, err)
	}
	return nil
}

// CreateUser inserts a user with an empty shop document
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, sqlInsertUser, user.ID, user.Username, user.Coins).Scan(&createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrUserAlreadyExists
	}
	if err != nil {
		return wrap(ErrMsgCreateUserFailed, err)
	}
	user.CreatedAt = createdAt
	return nil
}

// GetUserByID returns the user row without the shop document
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, sqlSelectUser, userID).Scan(&u.ID, &u.Username, &u.Coins, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, wrap(ErrMsgGetUserFailed, err)
	}
	return &u, nil
}

// GetInventory lists inventory entries in acquisition order
func (r *UserRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, sqlSelectInventory, userID)
	if err != nil {
		return nil, wrap(ErrMsgGetInventoryFailed, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.ID, &e.ItemID, &e.Quantity, &e.AcquiredAt)
		return e, err
	})
	if err != nil {
		return nil, wrap(ErrMsgGetInventoryFailed, err)
	}
	return entries, nil
}

// GetLedger lists the most recent ledger entries first
func (r *UserRepository) GetLedger(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, sqlSelectLedger, userID, limit)
	if err != nil {
		return nil, wrap(ErrMsgGetLedgerFailed, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		var e domain.LedgerEntry
		err := row.Scan(&e.ID, &e.UserID, &e.Delta, &e.BalanceAfter, &e.Reason, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, wrap(ErrMsgGetLedgerFailed, err)
	}
	return entries, nil
}

func scanUserState(ctx context.Context, q querier, query, userID string) (*domain.UserState, error) {
	var (
		state    domain.UserState
		shopData []byte
	)
	err := q.QueryRow(ctx, query, userID).Scan(&state.UserID, &state.Username, &state.Coins, &shopData)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, wrap(ErrMsgGetUserStateFailed, err)
	}
	if len(shopData) > 0 {
		if err := json.Unmarshal(shopData, &state.ShopData); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeShopFailed, userID, err)
		}
	}
	return &state, nil
}
