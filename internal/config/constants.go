package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.json"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "strideshop"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20

	DefaultCatalogCacheTTL    = 10 * time.Minute
	DefaultCatalogRefreshCron = "0 0 * * *"

	DefaultStartingCoins    = 100
	DefaultTxMaxRetries     = 3
	DefaultTxRetryBaseDelay = 50 * time.Millisecond
	DefaultTxRetryMaxDelay  = time.Second

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/deadletter.jsonl"
)
