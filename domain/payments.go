package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is an immutable receipt written once when an order is confirmed
// paid. It is never updated or deleted.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderID       string             `json:"orderId" bson:"orderId"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Amount        float64            `json:"amount" bson:"amount"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
}
