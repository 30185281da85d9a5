package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// TransactionRepository appends to the immutable trade audit trail.
type TransactionRepository interface {
	Append(ctx context.Context, t *domain.Transaction) error
	ListByShare(ctx context.Context, shareID string) ([]*domain.Transaction, error)
}
