// @title           Magnet Orders Backend API
// @version         1.0.0
// @description     Backend API for the Magicni magnet storefront. Handles order submission (photo upload, order persistence, confirmation emails) plus a read-only order list for operations.

// @contact.name   API Support
// @contact.email  magicnimagnet@gmail.com

// @host      localhost:8080
// @BasePath  /api

package main

import (
	"log"
	"net/http"

	"magnet-orders-backend/internal/config"
	"magnet-orders-backend/internal/database"
	"magnet-orders-backend/internal/handlers"
	"magnet-orders-backend/internal/mailer"
	"magnet-orders-backend/internal/services"
	"magnet-orders-backend/internal/supabase"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Supabase storage client
	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRole, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	// Database connection string
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required. Set it to your Supabase PostgreSQL connection string.")
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Printf("Warning: Failed to initialize migrator: %v", err)
	} else {
		defer migrator.Close()
		if err := migrator.Run(); err != nil {
			log.Printf("Warning: Migration failed: %v", err)
		} else {
			log.Println("Migrations completed successfully")
		}
	}

	// Initialize email client
	mailClient := mailer.NewClient(cfg.ResendAPIKey, cfg.FromEmail)

	// Initialize the submission workflow with its collaborators
	orderService := services.NewOrderService(storageClient, dbClient, mailClient, cfg.AdminEmail, cfg.UnitPrice)

	// Initialize handlers
	ordersHandler := handlers.NewOrdersHandler(orderService, dbClient)

	// Setup router
	router := gin.Default()

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api")

	api.POST("/order", ordersHandler.SubmitOrder)
	api.GET("/orders", ordersHandler.ListOrders)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
