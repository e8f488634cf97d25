package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/StrideShop_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Shop event types
const (
	ShopRotated       Type = domain.EventTypeShopRotated
	ShopItemPurchased Type = domain.EventTypeShopItemPurchased
	CoinsAwarded      Type = domain.EventTypeCoinsAwarded
	CatalogRefreshed  Type = domain.EventTypeCatalogRefreshed
)

// AllTypes lists every event type the service publishes
var AllTypes = []Type{ShopRotated, ShopItemPurchased, CoinsAwarded, CatalogRefreshed}

// NewShopRotatedEvent creates a shop rotation event
func NewShopRotatedEvent(userID string, slotCount int, resetAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopRotated,
		Payload: domain.ShopRotatedPayload{
			UserID:    userID,
			SlotCount: slotCount,
			ResetAt:   resetAt,
		},
	}
}

// NewShopItemPurchasedEvent creates a purchase event
func NewShopItemPurchasedEvent(userID string, slot domain.ShopSlot, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopItemPurchased,
		Payload: domain.ShopItemPurchasedPayload{
			UserID:  userID,
			SlotID:  slot.ID,
			ItemID:  slot.ItemID,
			Price:   slot.Price,
			Balance: balance,
		},
		Metadata: Metadata{MetadataKeySource: SourceShop},
	}
}

// NewCoinsAwardedEvent creates a ledger credit event
func NewCoinsAwardedEvent(userID string, amount int, reason string, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CoinsAwarded,
		Payload: domain.CoinsAwardedPayload{
			UserID:  userID,
			Amount:  amount,
			Reason:  reason,
			Balance: balance,
		},
		Metadata: Metadata{MetadataKeySource: SourceLedger},
	}
}

// NewCatalogRefreshedEvent creates a catalog refresh event
func NewCatalogRefreshedEvent(itemCount int, changed bool, syncedAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogRefreshed,
		Payload: domain.CatalogRefreshedPayload{
			ItemCount: itemCount,
			Changed:   changed,
			SyncedAt:  syncedAt,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
