package domain

import "time"

// CatalogItem is a purchasable item definition
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SellPrice   int    `json:"sell_price"`
}

// IsSellable reports whether the item may appear in a shop rotation
func (c CatalogItem) IsSellable() bool {
	return c.SellPrice > 0
}

// SyncMetadata tracks the last sync of a JSON config file
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
}
