package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mrm-cyber-api/models"
)

type SubscriberRepository struct {
	col *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{col: db.Collection("subscriber")}
}

func (r *SubscriberRepository) Insert(ctx context.Context, s *models.Subscriber) (string, error) {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res)
}

// FindByEmail returns subscribers with the given email, mainly for
// verification reads.
func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) ([]models.Subscriber, error) {
	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []models.Subscriber
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
