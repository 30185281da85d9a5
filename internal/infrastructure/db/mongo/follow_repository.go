package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// FollowRepository implements ports.FollowRepository using MongoDB. The
// unique compound index on (follower_id, following_id) is the authority on
// edge uniqueness, so racing creates cannot both succeed.
type FollowRepository struct {
	col *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{col: db.Collection(collectionFollows)}
}

func (r *FollowRepository) Create(ctx context.Context, f *domain.Follow) error {
	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{
		"follower_id":  followerID,
		"following_id": followingID,
	}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListFollowing returns the ids of all accounts the user follows.
func (r *FollowRepository) ListFollowing(ctx context.Context, followerID string) ([]string, error) {
	cursor, err := r.col.Find(ctx, bson.M{"follower_id": followerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			FollowingID string `bson:"following_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.FollowingID)
	}
	return ids, cursor.Err()
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"following_id": userID})
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"follower_id": userID})
}
