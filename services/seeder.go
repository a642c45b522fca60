package services

import (
	"context"
	"time"

	"customprint-api/models"
	"customprint-api/repository"

	"go.uber.org/zap"
)

// demoProducts returns the fixed demo catalog inserted into an empty store,
// each record stamped with the same created_at/updated_at.
func demoProducts(now time.Time) []interface{} {
	products := []models.Product{
		{
			Title:       "Precision Laser‑Cut Signage",
			Description: "Crisp edges in acrylic/wood with custom finishes.",
			Price:       149.0,
			Category:    "2D Laser-cut",
			Image:       "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?q=80&w=1600&auto=format&fit=crop",
			Featured:    true,
		},
		{
			Title:       "3D Trophy – Metallic Finish",
			Description: "Award‑ready trophies with premium 3D look.",
			Price:       249.0,
			Category:    "3D Trophy",
			Image:       "https://images.unsplash.com/photo-1513451713350-dee890297c4a?q=80&w=1600&auto=format&fit=crop",
			Featured:    true,
		},
		{
			Title:       "3D‑Style Product Mockup",
			Description: "Stand‑out visuals for packaging and promos.",
			Price:       99.0,
			Category:    "3D Mockup",
			Image:       "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?q=80&w=1600&auto=format&fit=crop",
			Featured:    true,
		},
		{
			Title:       "Custom Keychains",
			Description: "Personalised laser‑cut keychains in bulk.",
			Price:       5.0,
			Category:    "2D Laser-cut",
			Image:       "https://images.unsplash.com/photo-1520975922133-0f775525ae37?q=80&w=1600&auto=format&fit=crop",
			Featured:    false,
		},
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		p.InStock = true
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	return docs
}

// SeedProductsIfEmpty populates the product collection with demo records
// when it is empty. Best effort: a missing store or any store failure is
// logged and swallowed so startup is never blocked. Not guarded against
// concurrent startups; duplicate seeding across instances is accepted.
func SeedProductsIfEmpty(ctx context.Context, repo repository.ProductRepo) {
	if repo == nil {
		return
	}

	count, err := repo.Count(ctx)
	if err != nil {
		zap.L().Warn("Product seeding skipped, count failed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	docs := demoProducts(time.Now().UTC())
	if err := repo.InsertMany(ctx, docs); err != nil {
		zap.L().Warn("Product seeding failed", zap.Error(err))
		return
	}

	zap.L().Info("Seeded demo products", zap.Int("count", len(docs)))
}
