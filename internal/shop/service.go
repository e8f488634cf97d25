package shop

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/event"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/repository"
)

// Service defines the interface for daily shop operations
type Service interface {
	GetShop(ctx context.Context, userID string) (*domain.ShopState, error)
	Purchase(ctx context.Context, userID, slotID string) (*PurchaseResult, error)
	GetCountdown(ctx context.Context, userID string) (*Countdown, error)
	Shutdown(ctx context.Context) error
}

// CatalogSource supplies the item catalog used for rotations
type CatalogSource interface {
	ListSellable(ctx context.Context) ([]domain.CatalogItem, error)
}

// Option configures a shop service
type Option func(*service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithRand overrides the random source used for slot sampling
func WithRand(r *rand.Rand) Option {
	return func(s *service) { s.rng = r }
}

// WithIDGenerator overrides slot and entry id generation
func WithIDGenerator(newID func() string) Option {
	return func(s *service) { s.newID = newID }
}

// WithInventoryMode selects domain.InventoryModeAppend or domain.InventoryModeMerge
func WithInventoryMode(mode string) Option {
	return func(s *service) { s.inventoryMode = mode }
}

// WithRetryPolicy overrides the transaction retry policy
func WithRetryPolicy(p repository.RetryPolicy) Option {
	return func(s *service) { s.retry = p }
}

type service struct {
	repo      repository.Shop
	catalog   CatalogSource
	publisher event.Publisher

	now           func() time.Time
	rngMu         sync.Mutex
	rng           *rand.Rand
	newID         func() string
	inventoryMode string
	retry         repository.RetryPolicy

	wg sync.WaitGroup
}

// NewService creates a new shop service. publisher may be nil.
func NewService(repo repository.Shop, catalog CatalogSource, publisher event.Publisher, opts ...Option) Service {
	s := &service{
		repo:          repo,
		catalog:       catalog,
		publisher:     publisher,
		now:           time.Now,
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // shop rotation is not security critical
		newID:         uuid.NewString,
		inventoryMode: domain.InventoryModeAppend,
		retry:         repository.DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishAsync hands the event to the publisher off the request path
func (s *service) publishAsync(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	requestID := logger.GetRequestID(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		bgCtx := logger.WithRequestID(context.Background(), requestID)
		if err := s.publisher.Publish(bgCtx, evt); err != nil {
			logger.FromContext(bgCtx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		}
	}()
}

// Shutdown waits for pending event publications
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShopShuttingDown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}

func validateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf(ErrMsgEmptyUserIDFmt, domain.ErrInvalidInput)
	}
	return nil
}
