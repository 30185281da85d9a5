package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// UserRepository defines persistence operations for accounts. Balance
// mutations are atomic at the row level (increment / overwrite), so
// concurrent operations on the same account serialize in the store.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (string, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, p domain.Profile) error
	SetRole(ctx context.Context, id string, role domain.RoleType) error
	SetStatus(ctx context.Context, id string, status domain.AccountStatus) error

	// IncrementBalances applies the non-zero fields of delta with atomic
	// increments.
	IncrementBalances(ctx context.Context, id string, delta domain.BalanceDelta) error
	// SetFollowIncome overwrites the follow income balance.
	SetFollowIncome(ctx context.Context, id string, total float64) error
	// ResetDataIncome zeroes the data income balance.
	ResetDataIncome(ctx context.Context, id string) error

	// ListActiveIDs returns the ids of all accounts with status ACTIVE.
	ListActiveIDs(ctx context.Context) ([]string, error)
}
