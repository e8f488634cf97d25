package domain

import "time"

// Shop rotation constants
const (
	// ShopSlotCount is the number of offers generated per rotation
	ShopSlotCount = 6

	// ShopResetInterval is the length of a rotation window
	ShopResetInterval = 24 * time.Hour

	// BuyPriceMultiplier converts a catalog sell price into a shop price
	BuyPriceMultiplier = 2
)

// Inventory modes
const (
	InventoryModeAppend = "append"
	InventoryModeMerge  = "merge"
)

// Ledger limits
const (
	// MaxAwardAmount caps a single coin award
	MaxAwardAmount = 1_000_000
)
