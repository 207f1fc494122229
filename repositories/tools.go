package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mrm-cyber-api/models"
)

type ToolRepository struct {
	col *mongo.Collection
}

func NewToolRepository(db *mongo.Database) *ToolRepository {
	return &ToolRepository{col: db.Collection("tool")}
}

// Find returns all tools matching filter in storage-native order.
// An empty filter returns every document.
func (r *ToolRepository) Find(ctx context.Context, filter bson.M) ([]models.Tool, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tools []models.Tool
	if err := cur.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *ToolRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// Insert stores one tool and returns its identifier as a hex string.
func (r *ToolRepository) Insert(ctx context.Context, t *models.Tool) (string, error) {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res)
}

// insertedIDHex renders the storage-native identifier as a plain string.
func insertedIDHex(res *mongo.InsertOneResult) (string, error) {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}
