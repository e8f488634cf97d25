package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the audit log
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditRegistered)
}

// auditEvent writes every domain event to the structured log
func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Info(LogMsgEventPublished,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
