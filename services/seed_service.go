package services

import (
	"context"
	"fmt"

	"mrm-cyber-api/models"
)

type toolSeedStore interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, t *models.Tool) (string, error)
}

type courseSeedStore interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, c *models.Course) (string, error)
}

type labSeedStore interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, l *models.Lab) (string, error)
}

// SeedService inserts the fixed sample content. Each collection is guarded by
// its own emptiness check, so repeated runs never duplicate records.
type SeedService struct {
	tools   toolSeedStore
	courses courseSeedStore
	labs    labSeedStore
}

func NewSeedService(tools toolSeedStore, courses courseSeedStore, labs labSeedStore) *SeedService {
	return &SeedService{tools: tools, courses: courses, labs: labs}
}

func seedTools() []models.Tool {
	return []models.Tool{
		{
			Name:        "Nmap",
			Description: "Network exploration tool and security / port scanner.",
			Category:    models.CategoryReconnaissance,
			Tags:        []string{"network", "scanner"},
			Popularity:  95,
			Difficulty:  models.DifficultyIntermediate,
			Link:        "https://nmap.org",
		},
		{
			Name:        "Wireshark",
			Description: "Network protocol analyzer.",
			Category:    models.CategoryForensics,
			Tags:        []string{"packet", "analyzer"},
			Popularity:  90,
			Difficulty:  models.DifficultyBeginner,
			Link:        "https://www.wireshark.org",
		},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			Title:       "Ethical Hacking Basics",
			Difficulty:  models.DifficultyBeginner,
			Slug:        "ethical-hacking-basics",
			Description: "Kickstart into ethical hacking.",
		},
		{
			Title:      "Linux for Hackers",
			Difficulty: models.DifficultyBeginner,
			Slug:       "linux-for-hackers",
		},
	}
}

func seedLabs() []models.Lab {
	return []models.Lab{
		{
			Title:            "Intro Recon Lab",
			Category:         models.DifficultyBeginner,
			EstimatedMinutes: 20,
			Score:            0,
		},
	}
}

// Run seeds tools, courses and labs, each only when its collection is empty.
func (s *SeedService) Run(ctx context.Context) error {
	toolCount, err := s.tools.Count(ctx)
	if err != nil {
		return fmt.Errorf("count tools: %w", err)
	}
	if toolCount == 0 {
		for _, t := range seedTools() {
			t.ApplyDefaults()
			if err := models.Validate(&t); err != nil {
				return fmt.Errorf("seed tool %s: %w", t.Name, err)
			}
			if _, err := s.tools.Insert(ctx, &t); err != nil {
				return fmt.Errorf("insert tool %s: %w", t.Name, err)
			}
		}
	}

	courseCount, err := s.courses.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if courseCount == 0 {
		for _, c := range seedCourses() {
			c.ApplyDefaults()
			if err := models.Validate(&c); err != nil {
				return fmt.Errorf("seed course %s: %w", c.Slug, err)
			}
			if _, err := s.courses.Insert(ctx, &c); err != nil {
				return fmt.Errorf("insert course %s: %w", c.Slug, err)
			}
		}
	}

	labCount, err := s.labs.Count(ctx)
	if err != nil {
		return fmt.Errorf("count labs: %w", err)
	}
	if labCount == 0 {
		for _, l := range seedLabs() {
			if err := models.Validate(&l); err != nil {
				return fmt.Errorf("seed lab %s: %w", l.Title, err)
			}
			if _, err := s.labs.Insert(ctx, &l); err != nil {
				return fmt.Errorf("insert lab %s: %w", l.Title, err)
			}
		}
	}

	return nil
}
