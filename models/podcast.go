package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Podcast is declared for schema parity with the content site; no endpoint
// reads or writes it yet.
type Podcast struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	AudioURL    string             `bson:"audio_url,omitempty" json:"audio_url,omitempty" validate:"omitempty,url"`
	YoutubeURL  string             `bson:"youtube_url,omitempty" json:"youtube_url,omitempty" validate:"omitempty,url"`
	Guest       string             `bson:"guest,omitempty" json:"guest,omitempty"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
}
