package shop

// ==================== Error Messages ====================

// Formatted error messages for purchase validation
const (
	ErrMsgSlotNotFoundFmt      = "slot %s: %w"
	ErrMsgAlreadyPurchasedFmt  = "slot %s: %w"
	ErrMsgInsufficientFundsFmt = "price %d exceeds balance %d: %w"
	ErrMsgEmptySlotIDFmt       = "slot id is required: %w"
	ErrMsgEmptyUserIDFmt       = "user id is required: %w"
)

// Database operation error messages
const (
	ErrMsgGetUserStateFailed      = "failed to get user state: %w"
	ErrMsgLockUserStateFailed     = "failed to lock user state: %w"
	ErrMsgListCatalogFailed       = "failed to list sellable items: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgUpdateShopFailed        = "failed to update shop: %w"
	ErrMsgUpdateCoinsFailed       = "failed to update coins: %w"
	ErrMsgAddInventoryFailed      = "failed to add inventory entry: %w"
	ErrMsgAppendLedgerFailed      = "failed to append ledger entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Shutdown error messages
const (
	ErrMsgShutdownTimedOut = "shutdown timed out: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgGetShopCalled      = "GetShop called"
	LogMsgPurchaseCalled     = "Purchase called"
	LogMsgGetCountdownCalled = "GetCountdown called"
	LogMsgShopRotated        = "Shop rotated"
	LogMsgRotationRaceLost   = "Shop already rotated by a concurrent request"
	LogMsgItemPurchased      = "Shop item purchased"
	LogMsgPurchaseRejected   = "Purchase rejected"
	LogMsgEmptyCatalog       = "No sellable items, generated an empty shop"
	LogMsgPublishFailed      = "Failed to publish shop event"
)

// Background task log messages
const (
	LogMsgShopShuttingDown = "Shop service shutting down, waiting for background tasks..."
)
