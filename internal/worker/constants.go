package worker

import "time"

// DefaultCatalogRefreshSpec runs the catalog refresh at 00:00 UTC
const DefaultCatalogRefreshSpec = "0 0 * * *"

// DefaultRunTimeout bounds a scheduled catalog refresh
const DefaultRunTimeout = 2 * time.Minute

// Log messages for the catalog refresh worker
const (
	LogMsgCatalogRefreshScheduled = "Catalog refresh scheduled"
	LogMsgCatalogRefreshStarting  = "Catalog refresh starting"
	LogMsgCatalogRefreshCompleted = "Catalog refresh completed"
	LogMsgCatalogRefreshFailed    = "Catalog refresh failed"
	LogMsgWorkerShuttingDown      = "Shutting down catalog refresh worker"
	LogMsgWorkerShutdownComplete  = "Catalog refresh worker shutdown complete"
	LogMsgWorkerShutdownTimeout   = "Catalog refresh worker shutdown timeout, a refresh may still be running"
	LogMsgCronEvent               = "Cron event"
	LogMsgCronError               = "Cron error"
)

// Error messages
const (
	ErrMsgInvalidCronSpecFmt = "invalid cron spec %q: %w"
	ErrMsgWorkerStopped      = "catalog refresh worker is stopped"
	ErrMsgAlreadyStarted     = "catalog refresh worker already started"
)
