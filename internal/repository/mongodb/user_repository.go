package mongodb

import (
	"context"
	"errors"

	"toolsPlaza/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(client *mongo.Client) *UserRepository {
	return &UserRepository{
		col: client.Database(DatabaseName).Collection("users"),
	}
}

// Upsert merges the patch into the user keyed by email, creating the record
// on first sign-in. Repeated syncs are idempotent.
func (r *UserRepository) Upsert(ctx context.Context, email string, patch domain.User) (domain.UpsertResult, error) {
	set := bson.M{"email": email}
	if patch.Name != "" {
		set["name"] = patch.Name
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"role": domain.RoleUser},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return domain.UpsertResult{}, storeErr(err)
	}

	out := domain.UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}

	return out, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}

	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeErr(err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, storeErr(err)
	}

	return users, nil
}

// SetRole escalates an existing user. No upsert: a missing target is
// reported through the matched count.
func (r *UserRepository) SetRole(ctx context.Context, email, role string) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, storeErr(err)
	}

	return res.MatchedCount, nil
}
