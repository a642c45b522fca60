package controllers

import (
	"net/http"
	"os"

	"customprint-api/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Root is the landing route.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "CustomPrint Studio API running"})
}

// Hello is a trivial connectivity check for the frontend.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// Health is the service health probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// TestDatabase reports backend and database connectivity in one diagnostic
// payload, including the first few collection names when reachable.
func TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		response["database_name"] = name
	}

	if database.DB != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		collections, err := database.DB.ListCollectionNames(c.Request.Context(), bson.M{})
		if err != nil {
			response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
			response["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, response)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
