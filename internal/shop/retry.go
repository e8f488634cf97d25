package shop

import (
	"context"

	"github.com/osse101/StrideShop_Go/internal/repository"
)

func (s *service) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return repository.WithRetry(ctx, s.retry, op, fn)
}
