package mongodb

import (
	"context"

	"toolsPlaza/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(client *mongo.Client) *ReviewRepository {
	return &ReviewRepository{
		col: client.Database(DatabaseName).Collection("reviews"),
	}
}

func (r *ReviewRepository) Insert(ctx context.Context, review domain.Review) (string, error) {
	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return "", storeErr(err)
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.col.Find(ctx, bson.D{}, newestFirst)
	if err != nil {
		return nil, storeErr(err)
	}

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, storeErr(err)
	}

	return reviews, nil
}
