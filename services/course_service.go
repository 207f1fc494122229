package services

import (
	"context"

	"mrm-cyber-api/dto"
	"mrm-cyber-api/models"
)

type courseLister interface {
	FindAll(ctx context.Context) ([]models.Course, error)
}

// CourseService lists courses unfiltered, in storage-native order.
type CourseService struct {
	repo courseLister
}

func NewCourseService(repo courseLister) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) List(ctx context.Context) ([]dto.CourseDTO, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CourseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.NewCourseDTO(c))
	}
	return out, nil
}
