package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is declared for schema parity; no endpoint is wired to it.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Email        string             `bson:"email" json:"email" validate:"required"`
	PasswordHash string             `bson:"password_hash" json:"-" validate:"required"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}
