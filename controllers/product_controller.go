package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"customprint-api/models"
	"customprint-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductServiceAPI defines the product operations used by the controller.
type ProductServiceAPI interface {
	ListProducts(ctx context.Context, params services.ListProductsParams) ([]models.ProductOut, error)
}

type ProductController struct {
	service ProductServiceAPI
}

func NewProductController(service ProductServiceAPI) *ProductController {
	return &ProductController{service: service}
}

// GetProducts lists products, optionally filtered by featured and category,
// newest first.
func (pc *ProductController) GetProducts(c *gin.Context) {
	params := services.ListProductsParams{}

	if featuredStr := strings.TrimSpace(c.Query("featured")); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boolean value for 'featured'"})
			return
		}
		params.Featured = &featured
	}
	params.Category = strings.TrimSpace(c.Query("category"))

	products, err := pc.service.ListProducts(c.Request.Context(), params)
	if err != nil {
		zap.L().Error("Error listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}
