package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingUserIdentity   = "Missing user identity"

	// Catalog
	ErrMsgListCatalogFailed = "Failed to list catalog"
	ErrMsgSyncCatalogFailed = "Failed to sync catalog"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError  = "Unauthorized"

	ErrMsgUserNotFoundError      = "User not found. Register first."
	ErrMsgUserAlreadyExistsError = "User already registered"
	ErrMsgItemNotFoundError      = "Item not found"

	ErrMsgSlotNotFoundError      = "That offer is not in your shop"
	ErrMsgAlreadyPurchasedError  = "You already bought that offer"
	ErrMsgInsufficientFundsError = "Not enough coins"

	ErrMsgConflictError    = "The shop changed while buying. Please try again."
	ErrMsgUnavailableError = "Server is temporarily unavailable. Please try again later."
)

// Success messages
const (
	MsgCatalogSynced    = "Catalog synced"
	MsgCatalogUnchanged = "Catalog unchanged"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceError      = "Service call failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgMissingIdentity   = "Authenticated user id missing from context"
	LogMsgShopServed        = "Shop served"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgUserRegistered    = "User registered"
	LogMsgCoinsAwarded      = "Coins awarded"
	LogMsgCatalogSynced     = "Catalog sync requested"
)
