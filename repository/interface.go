package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductRepo defines the store operations used for the product collection.
// Reads return raw documents so the mapping layer can apply its defaults to
// partial or legacy records.
type ProductRepo interface {
	Count(ctx context.Context) (int64, error)
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	InsertMany(ctx context.Context, docs []interface{}) error
}

// EnquiryRepo defines the store operations used for the enquiry collection.
// Enquiries are write-only: no read path exists.
type EnquiryRepo interface {
	InsertOne(ctx context.Context, doc interface{}) (string, error)
}
