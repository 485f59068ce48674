package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	ToolID        string             `json:"toolId" bson:"toolId"`
	ToolName      string             `json:"toolName,omitempty" bson:"toolName,omitempty"`
	Quantity      int                `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	Paid          bool               `json:"paid" bson:"paid"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}
