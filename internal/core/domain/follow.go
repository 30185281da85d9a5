package domain

import "time"

// Follow is a directed edge from follower to followed account. Unique per
// ordered pair, never self-referencing, and immutable once created (there is
// no unfollow).
type Follow struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FollowerID  string    `json:"follower_id" bson:"follower_id"`
	FollowingID string    `json:"following_id" bson:"following_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
