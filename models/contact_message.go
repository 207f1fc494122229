package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage represents a message from the contact form
// Collection: contactmessage
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name    string             `bson:"name" json:"name" validate:"required"`
	Email   string             `bson:"email" json:"email" validate:"required"`
	Message string             `bson:"message" json:"message" validate:"required"`
}
