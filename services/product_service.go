package services

import (
	"context"
	"fmt"

	"customprint-api/models"
	"customprint-api/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// ListProductsParams holds the optional equality filters for listing.
type ListProductsParams struct {
	Featured *bool
	Category string
}

// ProductService handles product listing. A nil repo means the store is not
// configured; listing then degrades to a single fallback record instead of
// failing.
type ProductService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

// ListProducts returns the API projection of matching products, newest first.
func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams) ([]models.ProductOut, error) {
	if s.repo == nil {
		return []models.ProductOut{fallbackProduct()}, nil
	}

	filter := bson.M{}
	if params.Featured != nil {
		filter["featured"] = *params.Featured
	}
	if params.Category != "" {
		filter["category"] = params.Category
	}

	docs, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	out := make([]models.ProductOut, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.ToProductOut(doc))
	}
	return out, nil
}

// fallbackProduct is the placeholder returned when no database is configured.
func fallbackProduct() models.ProductOut {
	return models.ToProductOut(bson.M{
		"_id":         "0",
		"title":       "Sample Product",
		"description": "Configure DATABASE_URL and DATABASE_NAME to load real items.",
		"category":    "General",
		"featured":    true,
	})
}
