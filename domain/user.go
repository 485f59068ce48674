package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// UserInfo is the extended profile, keyed by email and replaced wholesale
// on each sync.
type UserInfo struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Education string             `json:"education,omitempty" bson:"education,omitempty"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	LinkedIn  string             `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}
