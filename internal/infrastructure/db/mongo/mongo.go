package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Collection names of the ledger store.
const (
	collectionUsers        = "users"
	collectionShares       = "shares"
	collectionFollows      = "follows"
	collectionTransactions = "transactions"
	collectionAdminActions = "admin_actions"
)

// Config captures the minimal settings required to establish a MongoDB
// connection. Multi-document transactions require the deployment to be a
// replica set.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database. A default timeout
// is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes backing the ledger invariants: unique
// emails, unique follow edges per ordered pair, and a single policy row per
// action name.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	for col, indexes := range map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionShares: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		collectionFollows: {
			{Keys: bson.D{{Key: "follower_id", Value: 1}, {Key: "following_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "following_id", Value: 1}}},
		},
		collectionTransactions: {
			{Keys: bson.D{{Key: "share_id", Value: 1}}},
		},
		collectionAdminActions: {
			{Keys: bson.D{{Key: "action", Value: 1}}, Options: unique},
		},
	} {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", col, err)
		}
	}
	return nil
}
