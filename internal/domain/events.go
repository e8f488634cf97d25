package domain

import "time"

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "shop.rotated")
const (
	// EventTypeShopRotated is published when a user's shop is regenerated
	EventTypeShopRotated = "shop.rotated"

	// EventTypeShopItemPurchased is published after a purchase commits
	EventTypeShopItemPurchased = "shop.item_purchased"

	// EventTypeCoinsAwarded is published after a ledger credit commits
	EventTypeCoinsAwarded = "ledger.coins_awarded"

	// EventTypeCatalogRefreshed is published when the catalog is re-synced
	EventTypeCatalogRefreshed = "catalog.refreshed"
)

// ShopRotatedPayload is the payload of EventTypeShopRotated
type ShopRotatedPayload struct {
	UserID    string    `json:"user_id"`
	SlotCount int       `json:"slot_count"`
	ResetAt   time.Time `json:"reset_at"`
}

// ShopItemPurchasedPayload is the payload of EventTypeShopItemPurchased
type ShopItemPurchasedPayload struct {
	UserID  string `json:"user_id"`
	SlotID  string `json:"slot_id"`
	ItemID  string `json:"item_id"`
	Price   int    `json:"price"`
	Balance int    `json:"balance"`
}

// CoinsAwardedPayload is the payload of EventTypeCoinsAwarded
type CoinsAwardedPayload struct {
	UserID  string `json:"user_id"`
	Amount  int    `json:"amount"`
	Reason  string `json:"reason"`
	Balance int    `json:"balance"`
}

// CatalogRefreshedPayload is the payload of EventTypeCatalogRefreshed
type CatalogRefreshedPayload struct {
	ItemCount int       `json:"item_count"`
	Changed   bool      `json:"changed"`
	SyncedAt  time.Time `json:"synced_at"`
}
