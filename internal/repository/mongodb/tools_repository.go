package mongodb

import (
	"context"
	"errors"

	"toolsPlaza/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ToolsRepository struct {
	col *mongo.Collection
}

func NewToolsRepository(client *mongo.Client) *ToolsRepository {
	return &ToolsRepository{
		col: client.Database(DatabaseName).Collection("tools"),
	}
}

func (r *ToolsRepository) Insert(ctx context.Context, tool domain.Tool) (string, error) {
	res, err := r.col.InsertOne(ctx, tool)
	if err != nil {
		return "", storeErr(err)
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ToolsRepository) FindAll(ctx context.Context) ([]domain.Tool, error) {
	cursor, err := r.col.Find(ctx, bson.D{}, newestFirst)
	if err != nil {
		return nil, storeErr(err)
	}

	tools := []domain.Tool{}
	if err := cursor.All(ctx, &tools); err != nil {
		return nil, storeErr(err)
	}

	return tools, nil
}

func (r *ToolsRepository) FindByID(ctx context.Context, id string) (*domain.Tool, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var tool domain.Tool
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&tool)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}

	return &tool, nil
}
