package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// classify maps driver errors onto the domain storage taxonomy so the service
// layer can decide whether to retry. Unrecognised errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrTxClosed) {
		return errors.New(domain.ErrMsgTxClosed)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgCodeSerializationFailure, pgErr.Code == pgCodeDeadlockDetected:
			return fmt.Errorf("%w: %w", domain.ErrTransactionConflict, err)
		case pgErr.Code == pgCodeCheckViolation && strings.Contains(pgErr.ConstraintName, "coins"):
			return fmt.Errorf("%w: %w", domain.ErrInsufficientFunds, err)
		case pgErr.Code == pgCodeAdminShutdown, pgErr.Code == pgCodeCannotConnectNow,
			strings.HasPrefix(pgErr.Code, pgClassConnectionException):
			return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

// wrap applies classify and then a message format, keeping both chains
func wrap(format string, err error) error {
	return fmt.Errorf(format, classify(err))
}

func parseEntryID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf(ErrMsgInvalidEntryID, err)
	}
	return u, nil
}
