package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/server"
	"github.com/osse101/StrideShop_Go/internal/shop"
	"github.com/osse101/StrideShop_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	CatalogWorker      *worker.CatalogRefreshWorker
	ShopService        shop.Service
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. catalog refresh worker (wait for a running sync)
//  3. shop service (flush async event publications)
//  4. event publisher (drain retries to the dead-letter file)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.CatalogWorker != nil {
		if err := components.CatalogWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.ShopService != nil {
		shutdownService(ctx, ServiceNameShop, components.ShopService)
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(LogMsgServiceShutdownFailed, "service", name, "error", err)
	}
}
