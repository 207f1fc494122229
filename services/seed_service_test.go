package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mrm-cyber-api/models"
)

type memToolStore struct{ docs []models.Tool }

func (m *memToolStore) Count(context.Context) (int64, error) { return int64(len(m.docs)), nil }
func (m *memToolStore) Insert(_ context.Context, t *models.Tool) (string, error) {
	m.docs = append(m.docs, *t)
	return "id", nil
}

type memCourseStore struct{ docs []models.Course }

func (m *memCourseStore) Count(context.Context) (int64, error) { return int64(len(m.docs)), nil }
func (m *memCourseStore) Insert(_ context.Context, c *models.Course) (string, error) {
	m.docs = append(m.docs, *c)
	return "id", nil
}

type memLabStore struct{ docs []models.Lab }

func (m *memLabStore) Count(context.Context) (int64, error) { return int64(len(m.docs)), nil }
func (m *memLabStore) Insert(_ context.Context, l *models.Lab) (string, error) {
	m.docs = append(m.docs, *l)
	return "id", nil
}

func TestSeedPopulatesEmptyCollections(t *testing.T) {
	tools, courses, labs := &memToolStore{}, &memCourseStore{}, &memLabStore{}
	svc := NewSeedService(tools, courses, labs)

	err := svc.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tools.docs, 2)
	assert.Len(t, courses.docs, 2)
	assert.Len(t, labs.docs, 1)

	assert.Equal(t, "Nmap", tools.docs[0].Name)
	assert.Equal(t, models.CategoryReconnaissance, tools.docs[0].Category)
	assert.Equal(t, "ethical-hacking-basics", courses.docs[0].Slug)
	assert.Equal(t, 20, labs.docs[0].EstimatedMinutes)
}

func TestSeedIsIdempotent(t *testing.T) {
	tools, courses, labs := &memToolStore{}, &memCourseStore{}, &memLabStore{}
	svc := NewSeedService(tools, courses, labs)

	assert.NoError(t, svc.Run(context.Background()))
	assert.NoError(t, svc.Run(context.Background()))

	assert.Len(t, tools.docs, 2)
	assert.Len(t, courses.docs, 2)
	assert.Len(t, labs.docs, 1)
}

func TestSeedGuardsCollectionsIndependently(t *testing.T) {
	tools := &memToolStore{docs: []models.Tool{{Name: "existing"}}}
	courses, labs := &memCourseStore{}, &memLabStore{}
	svc := NewSeedService(tools, courses, labs)

	assert.NoError(t, svc.Run(context.Background()))

	// non-empty tool collection untouched, the empty ones seeded
	assert.Len(t, tools.docs, 1)
	assert.Len(t, courses.docs, 2)
	assert.Len(t, labs.docs, 1)
}

func TestSeedRecordsPassValidation(t *testing.T) {
	for _, tool := range seedTools() {
		tool.ApplyDefaults()
		assert.NoError(t, models.Validate(&tool))
	}
	for _, course := range seedCourses() {
		course.ApplyDefaults()
		assert.NoError(t, models.Validate(&course))
	}
	for _, lab := range seedLabs() {
		assert.NoError(t, models.Validate(&lab))
	}
}
