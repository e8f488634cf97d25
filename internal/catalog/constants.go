package catalog

import "time"

// ==================== Configuration ====================

const (
	// ConfigFileName keys the sync metadata row of the catalog config
	ConfigFileName = "catalog.json"

	// SchemaName is the name the embedded schema is registered under
	SchemaName = "catalog.schema.json"

	// DefaultCacheSize bounds the number of cached catalog lookups
	DefaultCacheSize = 256

	// DefaultCacheTTL is used when no TTL is configured
	DefaultCacheTTL = 10 * time.Minute
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog config: %w"
	ErrMsgSchemaFailedFmt      = "schema validation failed for %s: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil         = "config is nil"
	ErrFmtItemAtIndexEmpty  = "%w: item at index %d has empty id"
	ErrFmtItemNegativePrice = "%w: item '%s' has negative sell_price"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed  = "failed to check if file changed: %w"
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgUpsertItemFailed       = "failed to upsert item %s: %w"
	ErrMsgListItemsFailed        = "failed to list catalog items: %w"
	ErrMsgGetItemFailed          = "failed to get catalog item: %w"
	ErrMsgRegisterSchemaFailed   = "failed to register catalog schema: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Catalog config unchanged, skipping sync"
	LogMsgSyncCompleted        = "Catalog sync completed"
	LogMsgInsertedItem         = "Inserted catalog item"
	LogMsgUpdatedItem          = "Updated catalog item"
	LogMsgUpdateMetadataFailed = "Failed to update catalog sync metadata"
	LogMsgCacheInvalidated     = "Catalog cache invalidated"
	LogMsgPublishFailed        = "Failed to publish catalog event"
)
