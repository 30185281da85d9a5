package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// PolicyRepository implements ports.PolicyRepository using MongoDB. The
// unique index on action plus an upsert keeps exactly one row per policy
// name even when writers race.
type PolicyRepository struct {
	col *mongo.Collection
}

func NewPolicyRepository(db *mongo.Database) *PolicyRepository {
	return &PolicyRepository{col: db.Collection(collectionAdminActions)}
}

func (r *PolicyRepository) Upsert(ctx context.Context, action string, value float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"action": action},
		bson.M{
			"$set": bson.M{
				"value":      value,
				"updated_at": time.Now().UTC(),
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Two upserts raced on first insert; the row exists now.
		return domain.ErrConflict
	}
	return err
}

func (r *PolicyRepository) Get(ctx context.Context, action string) (float64, error) {
	var a domain.AdminAction
	if err := r.col.FindOne(ctx, bson.M{"action": action}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return a.Value, nil
}
