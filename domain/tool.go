package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Tool struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	MinOrder    int                `json:"minOrder,omitempty" bson:"minOrder,omitempty"`
	Available   int                `json:"available,omitempty" bson:"available,omitempty"`
}
