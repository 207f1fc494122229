package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"mrm-cyber-api/models"
)

type ContactMessageRepository struct {
	col *mongo.Collection
}

func NewContactMessageRepository(db *mongo.Database) *ContactMessageRepository {
	return &ContactMessageRepository{col: db.Collection("contactmessage")}
}

func (r *ContactMessageRepository) Insert(ctx context.Context, m *models.ContactMessage) (string, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res)
}
