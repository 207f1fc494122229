package models

import "time"

// Incident severities
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Incident describes a security incident. No endpoint persists incidents;
// /incidents synthesizes samples of this shape per request.
type Incident struct {
	Country           string    `bson:"country" json:"country" validate:"required"`
	Type              string    `bson:"type" json:"type" validate:"required"`
	Severity          string    `bson:"severity" json:"severity" validate:"required,oneof=Low Medium High Critical"`
	Time              time.Time `bson:"time" json:"time" validate:"required"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	MitreAttackVector string    `bson:"mitre_attack_vector,omitempty" json:"mitre_attack_vector,omitempty"`
}
