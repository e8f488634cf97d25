package domain

import "time"

// InventoryEntry is one owned item reference
type InventoryEntry struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"itemId"`
	Quantity   int       `json:"quantity"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// LedgerEntry records one balance mutation
type LedgerEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Delta        int       `json:"delta"`
	BalanceAfter int       `json:"balanceAfter"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Ledger reasons
const (
	LedgerReasonShopPurchase = "shop_purchase"
	LedgerReasonAward        = "award"
	LedgerReasonSignupBonus  = "signup_bonus"
)
