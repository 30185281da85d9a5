package ports

import (
	"context"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// FollowRepository defines persistence operations for the follow graph.
type FollowRepository interface {
	// Create inserts the edge. The store enforces uniqueness per ordered
	// (follower, following) pair and returns domain.ErrAlreadyFollowing on a
	// duplicate, including when two creates race.
	Create(ctx context.Context, f *domain.Follow) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	// ListFollowing returns the ids of all accounts followerID follows.
	ListFollowing(ctx context.Context, followerID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}
