package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lab represents a hands-on lab document
// Collection: lab
type Lab struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title            string             `bson:"title" json:"title" validate:"required"`
	Category         string             `bson:"category" json:"category" validate:"required,oneof=Beginner Intermediate Advanced"`
	EstimatedMinutes int                `bson:"estimated_minutes" json:"estimated_minutes" validate:"required,gte=5,lte=240"`
	Link             string             `bson:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
	Score            int                `bson:"score" json:"score" validate:"gte=0"`
}
