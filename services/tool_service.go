package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"mrm-cyber-api/dto"
	"mrm-cyber-api/models"
)

// Recognized sort parameter values. Anything else leaves storage order.
const (
	SortPopularity = "popularity"
	SortDifficulty = "difficulty"
	SortCategory   = "category"
)

type toolFinder interface {
	Find(ctx context.Context, filter bson.M) ([]models.Tool, error)
}

// ToolService translates query parameters into a filter + sort over the tool
// collection. Filter runs in storage, sort runs on the in-memory copy.
type ToolService struct {
	repo toolFinder
}

func NewToolService(repo toolFinder) *ToolService {
	return &ToolService{repo: repo}
}

type ListToolsInput struct {
	Q        string
	Category string
	Sort     string
}

func (s *ToolService) List(ctx context.Context, in ListToolsInput) ([]dto.ToolDTO, error) {
	tools, err := s.repo.Find(ctx, BuildToolFilter(in.Q, in.Category))
	if err != nil {
		return nil, err
	}
	SortTools(tools, in.Sort)

	out := make([]dto.ToolDTO, 0, len(tools))
	for _, t := range tools {
		out = append(out, dto.NewToolDTO(t))
	}
	return out, nil
}

// BuildToolFilter combines a case-insensitive substring match on name with an
// exact match on category. Both absent means no filtering.
func BuildToolFilter(q, category string) bson.M {
	filter := bson.M{}
	if q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

// SortTools orders tools in place by the given sort key. Sorts are stable so
// ties keep their storage-native relative order.
func SortTools(tools []models.Tool, sortKey string) {
	switch sortKey {
	case SortPopularity:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].Popularity > tools[j].Popularity
		})
	case SortDifficulty:
		sort.SliceStable(tools, func(i, j int) bool {
			return models.DifficultyRank(tools[i].Difficulty) < models.DifficultyRank(tools[j].Difficulty)
		})
	case SortCategory:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].Category < tools[j].Category
		})
	}
}
