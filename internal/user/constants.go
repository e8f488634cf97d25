package user

// ============================================================================
// Limits
// ============================================================================

const (
	// MaxUsernameLength mirrors the users.username column
	MaxUsernameLength = 50

	// MaxReasonLength bounds ledger reasons supplied by callers
	MaxReasonLength = 64

	// ProfileLedgerLimit is the number of ledger entries shown on a profile
	ProfileLedgerLimit = 20
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgEmptyUserIDFmt     = "user id is required: %w"
	ErrMsgInvalidUsernameFmt = "username must be 1-%d characters: %w"
	ErrMsgInvalidAmountFmt   = "amount %d outside 1..%d: %w"
	ErrMsgInvalidReasonFmt   = "reason longer than %d characters: %w"
	ErrMsgCreateUserFailed   = "failed to create user: %w"
	ErrMsgGetUserFailed      = "failed to get user: %w"
	ErrMsgGetInventoryFailed = "failed to get inventory: %w"
	ErrMsgGetLedgerFailed    = "failed to get ledger: %w"
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgLockUserFailed     = "failed to lock user: %w"
	ErrMsgUpdateCoinsFailed  = "failed to update coins: %w"
	ErrMsgAppendLedgerFailed = "failed to append ledger entry: %w"
	ErrMsgCommitFailed       = "failed to commit transaction: %w"
	ErrMsgBalanceOverflowFmt = "balance %d plus %d overflows: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRegisterCalled     = "Register called"
	LogMsgUserRegistered     = "User registered"
	LogMsgSignupLedgerFailed = "Failed to journal signup bonus"
	LogMsgGetProfileCalled   = "GetProfile called"
	LogMsgItemLookupFailed   = "Failed to resolve item name"
	LogMsgAwardCoinsCalled   = "AwardCoins called"
	LogMsgCoinsAwarded       = "Coins awarded"
	LogMsgPublishFailed      = "Failed to publish ledger event"
)
