package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/StrideShop_Go/internal/logger"
)

// Countdown describes when the current shop window closes
type Countdown struct {
	NextResetAt      time.Time     `json:"next_reset_at"`
	Remaining        time.Duration `json:"-"`
	RemainingSeconds int64         `json:"remaining_seconds"`
}

// GetCountdown derives the time left until the next rotation. It never rotates.
// A shop that was never generated reports zero remaining time.
func (s *service) GetCountdown(ctx context.Context, userID string) (*Countdown, error) {
	logger.FromContext(ctx).Debug(LogMsgGetCountdownCalled, "user_id", userID)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	state, err := s.repo.GetUserState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserStateFailed, err)
	}

	remaining := state.ShopData.TimeUntilReset(s.now())
	c := &Countdown{
		Remaining:        remaining,
		RemainingSeconds: int64(remaining / time.Second),
	}
	if !state.ShopData.LastResetDate.IsZero() {
		c.NextResetAt = state.ShopData.NextResetAt()
	}
	return c, nil
}
