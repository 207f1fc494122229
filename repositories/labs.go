package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mrm-cyber-api/models"
)

type LabRepository struct {
	col *mongo.Collection
}

func NewLabRepository(db *mongo.Database) *LabRepository {
	return &LabRepository{col: db.Collection("lab")}
}

func (r *LabRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *LabRepository) Insert(ctx context.Context, l *models.Lab) (string, error) {
	res, err := r.col.InsertOne(ctx, l)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res)
}
