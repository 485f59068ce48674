package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email   string             `json:"email" bson:"email"`
	Name    string             `json:"name,omitempty" bson:"name,omitempty"`
	Message string             `json:"message" bson:"message"`
	Rating  int                `json:"rating" bson:"rating"`
}
