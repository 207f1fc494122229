package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course represents a course document
// Collection: course
type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Thumbnail   string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty" validate:"omitempty,url"`
	Difficulty  string             `bson:"difficulty" json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Slug        string             `bson:"slug" json:"slug" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

func (c *Course) ApplyDefaults() {
	if c.Difficulty == "" {
		c.Difficulty = DifficultyBeginner
	}
}
