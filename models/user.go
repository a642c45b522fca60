package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the users collection schema. No endpoint exercises it yet; it is
// declared so the collection keeps a typed shape alongside the others.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	Email    string             `json:"email" bson:"email" validate:"required"`
	Address  string             `json:"address" bson:"address" validate:"required"`
	Age      *int               `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}
