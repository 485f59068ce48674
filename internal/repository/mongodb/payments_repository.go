package mongodb

import (
	"context"

	"toolsPlaza/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentsRepository struct {
	col *mongo.Collection
}

func NewPaymentsRepository(client *mongo.Client) *PaymentsRepository {
	return &PaymentsRepository{
		col: client.Database(DatabaseName).Collection("payments"),
	}
}

// Insert writes a payment receipt. Receipts are append-only.
func (r *PaymentsRepository) Insert(ctx context.Context, payment domain.Payment) (string, error) {
	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return "", storeErr(err)
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
