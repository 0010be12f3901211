package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Daniel-Dotteam/trade-in-front/routes"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

func main() {
	logrus.Info("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Open the store and migrate tables
	st, err := store.Open(databaseDSN())
	if err != nil {
		logrus.Fatalf("❌ DB connection failed: %v", err)
	}
	defer st.Close()

	if err := st.AutoMigrate(); err != nil {
		logrus.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Reject request bodies with unknown fields
	gin.EnableJsonDecoderDisallowUnknownFields()

	// Gin setup
	r := gin.Default()

	// CORS settings: the widget is embedded in the storefront, so the API is
	// open to any origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Storefront widget page and assets
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Setup routes
	routes.SetupRoutes(r, st)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("❌ Failed to start server: %v", err)
	}
}

// databaseDSN builds the Postgres DSN from DATABASE_URL or the individual
// DB_* variables.
func databaseDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
}
