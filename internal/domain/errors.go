package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUserAlreadyExists = "user already exists"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Shop errors
	ErrMsgSlotNotFound      = "shop slot not found"
	ErrMsgAlreadyPurchased  = "shop slot already purchased"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Storage errors
	ErrMsgTransactionConflict = "transaction conflict"
	ErrMsgStoreUnavailable    = "store unavailable"
	ErrMsgTxClosed            = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgUnauthorized = "unauthorized"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists = errors.New(ErrMsgUserAlreadyExists)

	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Shop errors
	ErrSlotNotFound      = errors.New(ErrMsgSlotNotFound)
	ErrAlreadyPurchased  = errors.New(ErrMsgAlreadyPurchased)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Storage errors. Both are transient and retried at the transaction boundary.
	ErrTransactionConflict = errors.New(ErrMsgTransactionConflict)
	ErrStoreUnavailable    = errors.New(ErrMsgStoreUnavailable)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
)

// IsTransient reports whether err is worth retrying with a fresh transaction.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransactionConflict) || errors.Is(err, ErrStoreUnavailable)
}
