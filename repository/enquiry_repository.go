package repository

import (
	"context"
	"fmt"

	"customprint-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnquiryRepository struct {
	collection *mongo.Collection
}

func NewEnquiryRepository(db *mongo.Database) *EnquiryRepository {
	return &EnquiryRepository{
		collection: db.Collection(models.CollectionName(models.KindEnquiry)),
	}
}

// InsertOne stores a single enquiry document and returns the assigned
// identity rendered as text.
func (r *EnquiryRepository) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}
