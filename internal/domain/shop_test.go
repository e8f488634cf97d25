package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShopState_IsExpired(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{"never generated", time.Time{}, base, true},
		{"same instant", base, base, false},
		{"one second short", base, base.Add(ShopResetInterval - time.Second), false},
		{"exactly 24h", base, base.Add(ShopResetInterval), true},
		{"25h later", base, base.Add(25 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShopState{LastResetDate: tt.last}
			assert.Equal(t, tt.want, s.IsExpired(tt.now))
		})
	}
}

func TestShopState_TimeUntilReset(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := ShopState{LastResetDate: base}

	assert.Equal(t, 23*time.Hour, s.TimeUntilReset(base.Add(time.Hour)))
	assert.Equal(t, time.Duration(0), s.TimeUntilReset(base.Add(30*time.Hour)))
	assert.Equal(t, base.Add(24*time.Hour), s.NextResetAt())
	assert.Equal(t, time.Duration(0), ShopState{}.TimeUntilReset(base))
}

func TestShopState_FindSlotAndClone(t *testing.T) {
	s := ShopState{Slots: []ShopSlot{{ID: "a"}, {ID: "b"}}}

	assert.Equal(t, 1, s.FindSlot("b"))
	assert.Equal(t, -1, s.FindSlot("zzz"))

	c := s.Clone()
	c.Slots[0].IsPurchased = true
	assert.False(t, s.Slots[0].IsPurchased, "clone must not alias slots")
}

func TestPriceFor(t *testing.T) {
	assert.Equal(t, 20, PriceFor(CatalogItem{SellPrice: 10}))
	assert.Equal(t, 0, PriceFor(CatalogItem{SellPrice: 0}))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrTransactionConflict))
	assert.True(t, IsTransient(ErrStoreUnavailable))
	assert.False(t, IsTransient(ErrInsufficientFunds))
	assert.False(t, IsTransient(nil))
}
