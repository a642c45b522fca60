package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customprint-api/models"
	"customprint-api/repository"

	"go.uber.org/zap"
)

// ErrStoreUnavailable is returned by write paths when no database is
// configured. Read paths degrade to fallbacks instead.
var ErrStoreUnavailable = errors.New("database not configured")

// EnquiryService persists validated enquiry submissions.
type EnquiryService struct {
	repo repository.EnquiryRepo
}

func NewEnquiryService(repo repository.EnquiryRepo) *EnquiryService {
	return &EnquiryService{repo: repo}
}

// Submit stores a validated enquiry and returns its identity and submission
// timestamp. The input is persisted as-is: no field is added, removed or
// coerced beyond the timestamp stamp.
func (s *EnquiryService) Submit(ctx context.Context, in models.EnquiryIn) (*models.EnquiryOut, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	enquiry := models.Enquiry{
		EnquiryIn: in,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.InsertOne(ctx, enquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to submit enquiry: %w", err)
	}

	zap.L().Info("Enquiry submitted",
		zap.String("id", id),
		zap.String("product_type", in.ProductType),
	)

	return &models.EnquiryOut{ID: id, CreatedAt: enquiry.CreatedAt}, nil
}
