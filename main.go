package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customprint-api/controllers"
	"customprint-api/database"
	"customprint-api/logger"
	"customprint-api/middleware"
	"customprint-api/repository"
	"customprint-api/routes"
	"customprint-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()

	log := logger.Initialize(cfg.Environment)
	defer log.Sync()

	// --- 1. Database (optional) ---
	if err := database.Connect(cfg.DatabaseURL, cfg.DatabaseName); err != nil {
		// Startup continues without a database; read paths fall back,
		// write paths report the store as unavailable.
		zap.L().Warn("Database connection failed, running in fallback mode", zap.Error(err))
	}

	// --- 2. Dependency Injection (Wiring the layers together) ---

	var productRepo repository.ProductRepo
	var enquiryRepo repository.EnquiryRepo
	if database.DB != nil {
		productRepo = repository.NewProductRepository(database.DB)
		enquiryRepo = repository.NewEnquiryRepository(database.DB)
	}

	productService := services.NewProductService(productRepo)
	enquiryService := services.NewEnquiryService(enquiryRepo)

	productController := controllers.NewProductController(productService)
	enquiryController := controllers.NewEnquiryController(enquiryService)

	// One-shot demo seeding, best effort
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	services.SeedProductsIfEmpty(seedCtx, productRepo)
	seedCancel()

	// --- 3. HTTP Server & Middleware ---

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.SecurityHeaders())

	// CORS Configuration (the site frontend is served from another origin)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, 10*time.Minute)
	r.Use(rateLimiter.Middleware())

	// Add request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route Registration ---

	routes.RegisterRoutes(r, productController, enquiryController)

	// --- 5. Graceful Shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("CustomPrint Studio API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down CustomPrint Studio API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(); err != nil {
		zap.L().Error("Failed to close database", zap.Error(err))
	}

	zap.L().Info("CustomPrint Studio API stopped gracefully")
}
