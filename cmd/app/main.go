package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/StrideShop_Go/docs"
	"github.com/osse101/StrideShop_Go/internal/auth"
	"github.com/osse101/StrideShop_Go/internal/bootstrap"
	"github.com/osse101/StrideShop_Go/internal/catalog"
	"github.com/osse101/StrideShop_Go/internal/config"
	"github.com/osse101/StrideShop_Go/internal/database"
	"github.com/osse101/StrideShop_Go/internal/repository"
	"github.com/osse101/StrideShop_Go/internal/server"
	"github.com/osse101/StrideShop_Go/internal/shop"
	"github.com/osse101/StrideShop_Go/internal/user"
	"github.com/osse101/StrideShop_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title StrideShop API
// @version 1.0
// @description Daily rotating shop with transactional purchases.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn("Environment warning", "warning", w)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	applied, err := database.Migrate(ctx, dbPool)
	if err != nil {
		return err
	}
	slog.Info("Database migrated", "version", applied)

	repos := bootstrap.InitializeRepositories(dbPool)

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	bootstrap.RegisterEventHandlers(events.Bus)

	loader, err := catalog.NewLoader()
	if err != nil {
		return err
	}
	catalogService := catalog.NewService(repos.Catalog, loader, events.Publisher, cfg.CatalogCacheTTL)
	if err := bootstrap.SyncCatalog(ctx, catalogService, cfg.CatalogPath); err != nil {
		return err
	}

	retry := repository.RetryPolicy{
		MaxAttempts: cfg.TxMaxRetries,
		BaseDelay:   cfg.TxRetryBaseDelay,
		MaxDelay:    cfg.TxRetryMaxDelay,
	}

	shopService := shop.NewService(repos.User, catalogService, events.Publisher,
		shop.WithInventoryMode(cfg.InventoryMode()),
		shop.WithRetryPolicy(retry))

	userService := user.NewService(repos.User, catalogService, events.Publisher, user.Config{
		StartingCoins: cfg.StartingCoins,
		Retry:         retry,
	})

	catalogWorker, err := worker.NewCatalogRefreshWorker(catalogService, cfg.CatalogPath, cfg.CatalogRefreshCron)
	if err != nil {
		return err
	}
	if err := catalogWorker.Start(); err != nil {
		return err
	}

	tokenValidator, err := auth.NewTokenValidator(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, server.Dependencies{
		DBPool:           dbPool,
		ShopService:      shopService,
		UserService:      userService,
		CatalogService:   catalogService,
		CatalogRefresher: catalogWorker,
		TokenValidator:   tokenValidator,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		CatalogWorker:      catalogWorker,
		ShopService:        shopService,
		ResilientPublisher: events.Publisher,
	})

	return runErr
}
