package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber represents a newsletter signup
// Collection: subscriber
type Subscriber struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email  string             `bson:"email" json:"email" validate:"required"`
	Source string             `bson:"source" json:"source"`
}

func (s *Subscriber) ApplyDefaults() {
	if s.Source == "" {
		s.Source = "website"
	}
}
