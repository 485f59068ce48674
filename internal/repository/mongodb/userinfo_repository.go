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

type UserInfoRepository struct {
	col *mongo.Collection
}

func NewUserInfoRepository(client *mongo.Client) *UserInfoRepository {
	return &UserInfoRepository{
		col: client.Database(DatabaseName).Collection("userinfo"),
	}
}

func (r *UserInfoRepository) Upsert(ctx context.Context, email string, info domain.UserInfo) (domain.UpsertResult, error) {
	info.Email = email
	info.ID = primitive.NilObjectID

	update := bson.M{"$set": info}

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

func (r *UserInfoRepository) FindByEmail(ctx context.Context, email string) (*domain.UserInfo, error) {
	var info domain.UserInfo
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&info)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}

	return &info, nil
}
