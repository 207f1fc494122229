package dto

import (
	"mrm-cyber-api/models"
)

// CourseDTO is the wire shape of a course, id as hex string.
type CourseDTO struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Difficulty  string `json:"difficulty"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// NewCourseDTO constructs CourseDTO from models.Course
func NewCourseDTO(c models.Course) CourseDTO {
	return CourseDTO{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Thumbnail:   c.Thumbnail,
		Difficulty:  c.Difficulty,
		Slug:        c.Slug,
		Description: c.Description,
	}
}
