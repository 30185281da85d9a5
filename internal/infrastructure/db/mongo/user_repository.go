package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

// UserRepository implements ports.UserRepository using MongoDB. Ids are
// hex-encoded ObjectIDs generated on insert and stored as plain strings.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// Create inserts a new account document. A duplicate email maps to
// domain.ErrEmailTaken via the unique index.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailTaken
		}
		return "", err
	}
	return u.ID, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var u domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, p domain.Profile) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{
		"profile":    p,
		"updated_at": time.Now().UTC(),
	}})
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role domain.RoleType) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{
		"role_type":  role,
		"updated_at": time.Now().UTC(),
	}})
}

func (r *UserRepository) SetStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
}

// IncrementBalances applies the non-zero delta fields with a single $inc so
// concurrent balance mutations on the same account serialize in the store.
func (r *UserRepository) IncrementBalances(ctx context.Context, id string, delta domain.BalanceDelta) error {
	inc := bson.M{}
	if delta.DataIncome != 0 {
		inc["data_income"] = delta.DataIncome
	}
	if delta.FollowIncome != 0 {
		inc["follow_income"] = delta.FollowIncome
	}
	if delta.WallyWallet != 0 {
		inc["wally_wallet"] = delta.WallyWallet
	}
	if delta.AdminRevenue != 0 {
		inc["admin_revenue"] = delta.AdminRevenue
	}
	if len(inc) == 0 {
		return nil
	}
	return r.updateOne(ctx, id, bson.M{
		"$inc": inc,
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) SetFollowIncome(ctx context.Context, id string, total float64) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{
		"follow_income": total,
		"updated_at":    time.Now().UTC(),
	}})
}

func (r *UserRepository) ResetDataIncome(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{
		"data_income": 0.0,
		"updated_at":  time.Now().UTC(),
	}})
}

func (r *UserRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListActiveIDs returns the ids of every ACTIVE account.
func (r *UserRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	cursor, err := r.col.Find(ctx, bson.M{"status": domain.StatusActive})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}
