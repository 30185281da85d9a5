package ports

import "context"

// FollowService defines the follow graph and income distribution use-cases.
type FollowService interface {
	// Follow creates the edge and bumps the followed account's share price
	// by one step. Fails on self-follow, unknown accounts, duplicate edges,
	// and targets whose share price is zero.
	Follow(ctx context.Context, followerID, followingID string) error
	// DistributeFollowIncome walks the accounts userID follows, accumulates
	// each followed account's per-follower data income share when it exceeds
	// the minimum follow cost, overwrites userID's follow income with the
	// running total, and zeroes the followed account's data income. Returns
	// the final total.
	DistributeFollowIncome(ctx context.Context, userID string) (float64, error)
}
