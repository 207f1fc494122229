package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mrm-cyber-api/models"
)

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection("course")}
}

// FindAll returns every course in storage-native order.
func (r *CourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *CourseRepository) Insert(ctx context.Context, c *models.Course) (string, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res)
}
