package domain

import "time"

// ShopSlot is one offer in a user's daily shop
type ShopSlot struct {
	ID          string `json:"id"`
	ItemID      string `json:"itemId"`
	Price       int    `json:"price"`
	IsPurchased bool   `json:"isPurchased"`
}

// ShopState is the persisted shop document of a user
type ShopState struct {
	Slots         []ShopSlot `json:"slots"`
	LastResetDate time.Time  `json:"lastResetDate"`
}

// IsExpired reports whether the reset window has elapsed at now.
// A shop that was never generated is always expired.
func (s ShopState) IsExpired(now time.Time) bool {
	if s.LastResetDate.IsZero() {
		return true
	}
	return now.Sub(s.LastResetDate) >= ShopResetInterval
}

// NextResetAt returns the instant the current window closes
func (s ShopState) NextResetAt() time.Time {
	return s.LastResetDate.Add(ShopResetInterval)
}

// TimeUntilReset returns the remaining window, never negative
func (s ShopState) TimeUntilReset(now time.Time) time.Duration {
	if s.LastResetDate.IsZero() {
		return 0
	}
	remaining := s.NextResetAt().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FindSlot returns the index of the slot with the given id, or -1
func (s ShopState) FindSlot(slotID string) int {
	for i := range s.Slots {
		if s.Slots[i].ID == slotID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can mutate slots without aliasing stored state
func (s ShopState) Clone() ShopState {
	out := ShopState{LastResetDate: s.LastResetDate}
	if s.Slots != nil {
		out.Slots = make([]ShopSlot, len(s.Slots))
		copy(out.Slots, s.Slots)
	}
	return out
}

// PriceFor returns the shop price of a catalog item
func PriceFor(item CatalogItem) int {
	return item.SellPrice * BuyPriceMultiplier
}
