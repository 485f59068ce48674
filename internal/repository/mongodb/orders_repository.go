package mongodb

import (
	"context"
	"errors"

	"toolsPlaza/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrdersRepository struct {
	col *mongo.Collection
}

func NewOrdersRepository(client *mongo.Client) *OrdersRepository {
	return &OrdersRepository{
		col: client.Database(DatabaseName).Collection("orders"),
	}
}

func (r *OrdersRepository) Insert(ctx context.Context, order domain.Order) (string, error) {
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return "", storeErr(err)
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OrdersRepository) FindByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email}, newestFirst)
	if err != nil {
		return nil, storeErr(err)
	}

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, storeErr(err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var order domain.Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}

	return &order, nil
}

// MarkPaid flips the order to paid, guarded by paid=false so that a racing
// or replayed confirmation applies at most once. Returns whether this call
// performed the transition.
func (r *OrdersRepository) MarkPaid(ctx context.Context, id, transactionID string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}

	filter := bson.M{"_id": oid, "paid": false}
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, storeErr(err)
	}

	return res.ModifiedCount == 1, nil
}

func (r *OrdersRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, storeErr(err)
	}

	return res.DeletedCount, nil
}
