package ports

import "context"

// PolicyRepository stores global admin parameters, one row per action name.
type PolicyRepository interface {
	// Upsert writes the value for the named action atomically; concurrent
	// upserts of the same name never produce duplicate rows.
	Upsert(ctx context.Context, action string, value float64) error
	// Get returns the current value, or domain.ErrNotFound when the action
	// has never been set.
	Get(ctx context.Context, action string) (float64, error)
}
