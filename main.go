package main

import (
	"log"
	"net/http"
	"os"

	"brew-and-bite-api/catalog"
	"brew-and-bite-api/config"
	"brew-and-bite-api/engine"
	"brew-and-bite-api/handlers"
	"brew-and-bite-api/notify"
	"brew-and-bite-api/routes"
	"brew-and-bite-api/sentiment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env outside production, same as the frontend dev setup expects
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Wire the handler collaborators
	handlers.Init(
		catalog.Load(),
		engine.NewWeatherClient(config.WeatherURL()),
		notify.New(config.SMTPHost(), config.SMTPPort(), config.SMTPUser(), config.SMTPPass(), config.MailSender()),
		sentiment.NewVaderClassifier(),
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Menu item photos
	r.Static("/static", "./static")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Brew & Bite Cafe API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "☕ Welcome to the Brew & Bite Cafe API",
			"docs":     "/api/state-machine",
			"health":   "/health",
			"sections": []string{"breakfast", "lunch", "dinner", "drinks"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
