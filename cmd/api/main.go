package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BhargaviBathini/food-allergy/internal/analysis"
	"github.com/BhargaviBathini/food-allergy/internal/auth"
	"github.com/BhargaviBathini/food-allergy/internal/db"
	"github.com/BhargaviBathini/food-allergy/internal/history"
	"github.com/BhargaviBathini/food-allergy/internal/llm"
	"github.com/BhargaviBathini/food-allergy/internal/logger"
	"github.com/BhargaviBathini/food-allergy/internal/middleware"
	"github.com/BhargaviBathini/food-allergy/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"JWT_SECRET",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	logger.Init()
	defer logger.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	var archiver analysis.Archiver
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archiver = r2Client
	}

	// ───────────────────────── WIRING ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	historyRepo := history.NewPostgresRepository(pgDB)
	historyService := history.NewService(historyRepo)
	historyHandler := history.NewHandler(historyService)

	llmClient := llm.NewGeminiClient()

	analysisService := analysis.NewService(userRepo, llmClient, historyService, archiver)
	analysisHandler := analysis.NewHandler(analysisService)

	// ───────────────────────── ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"message": "Food Allergy Detector API is running",
			})
		})

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/user/:user_id", authHandler.GetUser)
		api.PUT("/user/:user_id/allergies", authHandler.UpdateAllergies)

		api.POST("/analyze-food", analysisHandler.AnalyzeFood)
		api.GET("/user/:user_id/history", historyHandler.GetHistory)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", authHandler.Me)
		}
	}

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
