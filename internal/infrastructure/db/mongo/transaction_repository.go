package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// TransactionRepository implements ports.TransactionRepository using
// MongoDB. Trade records are append-only; nothing updates or deletes them.
type TransactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions)}
}

func (r *TransactionRepository) Append(ctx context.Context, t *domain.Transaction) error {
	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *TransactionRepository) ListByShare(ctx context.Context, shareID string) ([]*domain.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"share_id": shareID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domain.Transaction
	for cursor.Next(ctx) {
		var t domain.Transaction
		if err := cursor.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, cursor.Err()
}
