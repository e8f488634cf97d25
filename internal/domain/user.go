package domain

import "time"

// User represents a registered user
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Coins     int       `json:"coins"`
	CreatedAt time.Time `json:"created_at"`
}

// UserState is the per-user aggregate the shop engine reads and mutates.
// It is also the unit of mutual exclusion for purchases and rotations.
type UserState struct {
	UserID    string           `json:"userId"`
	Username  string           `json:"username"`
	Coins     int              `json:"coins"`
	ShopData  ShopState        `json:"shopData"`
	Inventory []InventoryEntry `json:"inventory,omitempty"`
}

// CanAfford reports whether the balance covers price
func (u UserState) CanAfford(price int) bool {
	return u.Coins >= price
}
