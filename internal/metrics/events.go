package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every published event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for evt. It never fails the publish: a payload
// that cannot be decoded is counted and skipped.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ShopRotated:
		var p domain.ShopRotatedPayload
		if p, err = event.DecodePayload[domain.ShopRotatedPayload](evt.Payload); err == nil {
			ShopRotations.Inc()
			ShopSlotsOffered.Observe(float64(p.SlotCount))
		}

	case event.ShopItemPurchased:
		var p domain.ShopItemPurchasedPayload
		if p, err = event.DecodePayload[domain.ShopItemPurchasedPayload](evt.Payload); err == nil {
			ShopPurchases.WithLabelValues(p.ItemID).Inc()
			CoinsSpent.Add(float64(p.Price))
		}

	case event.CoinsAwarded:
		var p domain.CoinsAwardedPayload
		if p, err = event.DecodePayload[domain.CoinsAwardedPayload](evt.Payload); err == nil {
			CoinsAwarded.WithLabelValues(p.Reason).Add(float64(p.Amount))
		}

	case event.CatalogRefreshed:
		var p domain.CatalogRefreshedPayload
		if p, err = event.DecodePayload[domain.CatalogRefreshedPayload](evt.Payload); err == nil {
			CatalogRefreshes.WithLabelValues(strconv.FormatBool(p.Changed)).Inc()
			CatalogItems.Set(float64(p.ItemCount))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Warn(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
