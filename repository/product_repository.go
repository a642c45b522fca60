package repository

import (
	"context"

	"customprint-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection(models.CollectionName(models.KindProduct)),
	}
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Find returns raw documents matching the filter, newest first.
func (r *ProductRepository) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *ProductRepository) InsertMany(ctx context.Context, docs []interface{}) error {
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
