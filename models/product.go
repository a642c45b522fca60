package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default values applied when a stored product document is missing a field.
const (
	DefaultProductTitle    = "Untitled"
	DefaultProductCategory = "General"
)

// Product is the stored (write-side) product document.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Featured    bool               `json:"featured" bson:"featured"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductOut is the API-facing projection of a stored product document.
// in_stock is write-side only and intentionally absent here.
type ProductOut struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       *string  `json:"image"`
	Featured    bool     `json:"featured"`
}

// ToProductOut projects a raw stored document into a ProductOut, applying
// the documented defaults for absent fields. Documents written outside the
// seeder (partial or legacy records) are tolerated: a missing field falls
// back to its default, never an error. The identity is always rendered as
// text regardless of the store's native representation.
func ToProductOut(doc bson.M) ProductOut {
	return ProductOut{
		ID:          stringID(doc["_id"]),
		Title:       stringOr(doc["title"], DefaultProductTitle),
		Description: optString(doc["description"]),
		Price:       optFloat(doc["price"]),
		Category:    stringOr(doc["category"], DefaultProductCategory),
		Image:       optString(doc["image"]),
		Featured:    boolOr(doc["featured"], false),
	}
}

func stringID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func optString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func optFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

func boolOr(v interface{}, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}
