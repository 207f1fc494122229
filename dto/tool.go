package dto

import (
	"mrm-cyber-api/models"
)

// ToolDTO is the wire shape of a tool. The storage identifier is rendered as
// a hex string under "_id", never as the driver's ObjectID type.
type ToolDTO struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Popularity  int      `json:"popularity"`
	Difficulty  string   `json:"difficulty"`
	Link        string   `json:"link,omitempty"`
}

// NewToolDTO constructs ToolDTO from models.Tool
func NewToolDTO(t models.Tool) ToolDTO {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return ToolDTO{
		ID:          t.ID.Hex(),
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Tags:        tags,
		Popularity:  t.Popularity,
		Difficulty:  t.Difficulty,
		Link:        t.Link,
	}
}
