package controllers

import (
	"context"
	"errors"
	"net/http"

	"customprint-api/models"
	"customprint-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EnquiryServiceAPI defines the enquiry operations used by the controller.
type EnquiryServiceAPI interface {
	Submit(ctx context.Context, in models.EnquiryIn) (*models.EnquiryOut, error)
}

type EnquiryController struct {
	service   EnquiryServiceAPI
	validator *RequestValidator
}

func NewEnquiryController(service EnquiryServiceAPI) *EnquiryController {
	return &EnquiryController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// CreateEnquiry validates an enquiry submission and persists it. A failed
// validation never reaches the store.
func (ec *EnquiryController) CreateEnquiry(c *gin.Context) {
	req, fieldErrors := ec.validator.ParseEnquiryRequest(c)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrors,
		})
		return
	}

	out, err := ec.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
			return
		}
		zap.L().Error("Error submitting enquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit enquiry"})
		return
	}

	c.JSON(http.StatusCreated, out)
}
