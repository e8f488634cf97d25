package postgres

// ============================================================================
// SQL - Users
// ============================================================================

const (
	sqlSelectUserState = `
		SELECT user_id, username, coins, shop_data
		FROM users
		WHERE user_id = $1`

	sqlSelectUserStateForUpdate = sqlSelectUserState + `
		FOR UPDATE`

	sqlUpdateShopData = `
		UPDATE users
		SET shop_data = $2, updated_at = NOW()
		WHERE user_id = $1`

	sqlUpdateCoins = `
		UPDATE users
		SET coins = $2, updated_at = NOW()
		WHERE user_id = $1`

	sqlInsertUser = `
		INSERT INTO users (user_id, username, coins)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING created_at`

	sqlSelectUser = `
		SELECT user_id, username, coins, created_at
		FROM users
		WHERE user_id = $1`
)

// ============================================================================
// SQL - Inventory & Ledger
// ============================================================================

const (
	sqlInsertInventoryEntry = `
		INSERT INTO inventory_entries (entry_id, user_id, item_id, quantity, acquired_at)
		VALUES ($1, $2, $3, $4, $5)`

	// Merges into the oldest entry for the item
	sqlIncrementInventoryEntry = `
		UPDATE inventory_entries
		SET quantity = quantity + $3
		WHERE entry_id = (
			SELECT entry_id FROM inventory_entries
			WHERE user_id = $1 AND item_id = $2
			ORDER BY acquired_at, entry_id
			LIMIT 1
		)`

	sqlSelectInventory = `
		SELECT entry_id, item_id, quantity, acquired_at
		FROM inventory_entries
		WHERE user_id = $1
		ORDER BY acquired_at, entry_id`

	sqlInsertLedgerEntry = `
		INSERT INTO ledger_entries (entry_id, user_id, delta, balance_after, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	sqlSelectLedger = `
		SELECT entry_id, user_id, delta, balance_after, reason, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, entry_id
		LIMIT $2`
)

// ============================================================================
// SQL - Catalog
// ============================================================================

const (
	sqlSelectCatalog = `
		SELECT item_id, display_name, description, sell_price
		FROM catalog_items
		ORDER BY item_id`

	sqlSelectCatalogItem = `
		SELECT item_id, display_name, description, sell_price
		FROM catalog_items
		WHERE item_id = $1`

	// xmax = 0 only for freshly inserted rows
	sqlUpsertCatalogItem = `
		INSERT INTO catalog_items (item_id, display_name, description, sell_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    description = EXCLUDED.description,
		    sell_price = EXCLUDED.sell_price,
		    updated_at = NOW()
		RETURNING (xmax = 0)`

	sqlSelectSyncMetadata = `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM config_sync_metadata
		WHERE config_name = $1`

	sqlUpsertSyncMetadata = `
		INSERT INTO config_sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time`
)

// ============================================================================
// Postgres error codes
// ============================================================================

const (
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeCheckViolation       = "23514"
	pgCodeAdminShutdown        = "57P01"
	pgCodeCannotConnectNow     = "57P03"
	pgClassConnectionException = "08"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgBeginTxFailed          = "failed to begin transaction: %w"
	ErrMsgGetUserStateFailed     = "failed to get user state: %w"
	ErrMsgDecodeShopFailed       = "failed to decode shop data for user %s: %w"
	ErrMsgEncodeShopFailed       = "failed to encode shop data: %w"
	ErrMsgUpdateShopFailed       = "failed to update shop data: %w"
	ErrMsgUpdateCoinsFailed      = "failed to update coins: %w"
	ErrMsgInsertInventoryFailed  = "failed to insert inventory entry: %w"
	ErrMsgIncrementInventoryFail = "failed to increment inventory entry: %w"
	ErrMsgInsertLedgerFailed     = "failed to insert ledger entry: %w"
	ErrMsgCreateUserFailed       = "failed to create user: %w"
	ErrMsgGetUserFailed          = "failed to get user: %w"
	ErrMsgGetInventoryFailed     = "failed to get inventory: %w"
	ErrMsgGetLedgerFailed        = "failed to get ledger: %w"
	ErrMsgListCatalogFailed      = "failed to list catalog items: %w"
	ErrMsgGetCatalogItemFailed   = "failed to get catalog item: %w"
	ErrMsgUpsertCatalogFailed    = "failed to upsert catalog item %s: %w"
	ErrMsgGetSyncMetadataFailed  = "failed to get sync metadata: %w"
	ErrMsgUpsertSyncMetaFailed   = "failed to upsert sync metadata: %w"
	ErrMsgInvalidEntryID         = "invalid entry id: %w"
)
