package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tool categories form a closed set; anything else fails validation.
const (
	CategoryReconnaissance = "Reconnaissance"
	CategoryExploitation   = "Exploitation"
	CategoryForensics      = "Forensics"
	CategoryWebSecurity    = "Web Security"
	CategoryWireless       = "Wireless"
	CategoryOSINT          = "OSINT"
)

// Difficulty levels, shared by Tool, Course and Lab. Rank order matters for
// sorting: Beginner < Intermediate < Advanced.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// DifficultyRank maps a difficulty to its sort rank. Unknown or missing
// values rank as Beginner.
func DifficultyRank(d string) int {
	switch d {
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 0
	}
}

// Tool represents a security tool document
// Collection: tool
type Tool struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required,oneof=Reconnaissance Exploitation Forensics 'Web Security' Wireless OSINT"`
	Tags        []string           `bson:"tags" json:"tags"`
	Popularity  int                `bson:"popularity" json:"popularity" validate:"gte=0"`
	Difficulty  string             `bson:"difficulty" json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty" validate:"omitempty,url"`
}

// ApplyDefaults fills schema defaults on zero-valued fields.
func (t *Tool) ApplyDefaults() {
	if t.Difficulty == "" {
		t.Difficulty = DifficultyBeginner
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
}
