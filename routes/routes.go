package routes

import (
	"customprint-api/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all application routes onto the router.
func RegisterRoutes(r *gin.Engine, productController *controllers.ProductController, enquiryController *controllers.EnquiryController) {
	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)
	r.GET("/test", controllers.TestDatabase)

	api := r.Group("/api")
	{
		api.GET("/hello", controllers.Hello)
		api.GET("/products", productController.GetProducts)
		api.POST("/enquiries", enquiryController.CreateEnquiry)
	}
}
