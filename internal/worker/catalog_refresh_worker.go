package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/StrideShop_Go/internal/catalog"
	"github.com/osse101/StrideShop_Go/internal/logger"
)

// ErrWorkerStopped is returned by RunNow after Shutdown
var ErrWorkerStopped = errors.New(ErrMsgWorkerStopped)

// CatalogSyncer re-reads the catalog config into the store
type CatalogSyncer interface {
	Sync(ctx context.Context, path string) (*catalog.SyncResult, error)
}

// CatalogRefreshWorker re-syncs the catalog config on a cron schedule so the
// day's rotations see edits made to the file. Runs never overlap.
type CatalogRefreshWorker struct {
	syncer  CatalogSyncer
	path    string
	spec    string
	timeout time.Duration

	cron  *cron.Cron
	runMu sync.Mutex

	mu      sync.Mutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewCatalogRefreshWorker validates spec (standard 5-field cron, UTC) and
// returns a worker that is not yet scheduled.
func NewCatalogRefreshWorker(syncer CatalogSyncer, path, spec string) (*CatalogRefreshWorker, error) {
	if spec == "" {
		spec = DefaultCatalogRefreshSpec
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidCronSpecFmt, spec, err)
	}

	cronLog := slogCronLogger{log: slog.Default()}
	return &CatalogRefreshWorker{
		syncer:  syncer,
		path:    path,
		spec:    spec,
		timeout: DefaultRunTimeout,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog)),
		),
	}, nil
}

// Start schedules the refresh
func (w *CatalogRefreshWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return ErrWorkerStopped
	}
	if w.started {
		return errors.New(ErrMsgAlreadyStarted)
	}

	if _, err := w.cron.AddFunc(w.spec, w.scheduledRun); err != nil {
		return fmt.Errorf(ErrMsgInvalidCronSpecFmt, w.spec, err)
	}
	w.cron.Start()
	w.started = true

	slog.Default().Info(LogMsgCatalogRefreshScheduled, "spec", w.spec, "next_run", w.nextRunLocked())
	return nil
}

// NextRun returns the next scheduled refresh, or the zero time when not started
func (w *CatalogRefreshWorker) NextRun() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nextRunLocked()
}

func (w *CatalogRefreshWorker) nextRunLocked() time.Time {
	entries := w.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// RunNow syncs immediately. A refresh already in flight finishes first.
func (w *CatalogRefreshWorker) RunNow(ctx context.Context) (*catalog.SyncResult, error) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil, ErrWorkerStopped
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	w.runMu.Lock()
	defer w.runMu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgCatalogRefreshStarting, "path", w.path)

	start := time.Now()
	result, err := w.syncer.Sync(ctx, w.path)
	if err != nil {
		log.Error(LogMsgCatalogRefreshFailed, "path", w.path, "error", err)
		return nil, err
	}

	log.Info(LogMsgCatalogRefreshCompleted,
		"changed", result.Changed,
		"items", result.ItemCount,
		"duration", time.Since(start))
	return result, nil
}

func (w *CatalogRefreshWorker) scheduledRun() {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	// Errors are logged by RunNow; the next tick retries.
	_, _ = w.RunNow(ctx)
}

// Shutdown stops scheduling and waits for an in-flight refresh
func (w *CatalogRefreshWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShuttingDown)

	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	cronDone := w.cron.Stop().Done()

	done := make(chan struct{})
	go func() {
		<-cronDone
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout)
		return ctx.Err()
	}
}
