package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// ShareRepository defines persistence operations for shares.
type ShareRepository interface {
	Create(ctx context.Context, s *domain.Share) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Share, error)
	// FirstByOwner returns the oldest share owned by the user, or
	// domain.ErrShareNotFound when the user owns none.
	FirstByOwner(ctx context.Context, ownerID string) (*domain.Share, error)
	SetOwner(ctx context.Context, shareID, ownerID string) error
	MarkSold(ctx context.Context, shareID string) error
	// IncrementPrice atomically adds step to the share's price.
	IncrementPrice(ctx context.Context, shareID string, step float64) error
}
