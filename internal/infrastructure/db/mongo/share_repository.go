package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// ShareRepository implements ports.ShareRepository using MongoDB.
type ShareRepository struct {
	col *mongo.Collection
}

func NewShareRepository(db *mongo.Database) *ShareRepository {
	return &ShareRepository{col: db.Collection(collectionShares)}
}

func (r *ShareRepository) Create(ctx context.Context, s *domain.Share) (string, error) {
	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (r *ShareRepository) FindByID(ctx context.Context, id string) (*domain.Share, error) {
	var s domain.Share
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShareNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FirstByOwner returns the oldest share owned by the user.
func (r *ShareRepository) FirstByOwner(ctx context.Context, ownerID string) (*domain.Share, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var s domain.Share
	if err := r.col.FindOne(ctx, bson.M{"owner_id": ownerID}, opts).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShareNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShareRepository) SetOwner(ctx context.Context, shareID, ownerID string) error {
	return r.updateOne(ctx, shareID, bson.M{"$set": bson.M{"owner_id": ownerID}})
}

func (r *ShareRepository) MarkSold(ctx context.Context, shareID string) error {
	return r.updateOne(ctx, shareID, bson.M{"$set": bson.M{"sold": true}})
}

// IncrementPrice atomically bumps the share price.
func (r *ShareRepository) IncrementPrice(ctx context.Context, shareID string, step float64) error {
	return r.updateOne(ctx, shareID, bson.M{"$inc": bson.M{"price": step}})
}

func (r *ShareRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShareNotFound
	}
	return nil
}
