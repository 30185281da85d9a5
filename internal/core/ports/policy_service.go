package ports

import "context"

// PolicyService defines the admin policy store use-cases.
type PolicyService interface {
	// SetMinimumFollowCost upserts the distribution threshold. At most one
	// policy row exists for the action name at any time.
	SetMinimumFollowCost(ctx context.Context, value float64) error
	// MinimumFollowCost returns the current threshold, or the default when
	// it has never been set.
	MinimumFollowCost(ctx context.Context) (float64, error)
}
