package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/aalexander1088-svg/CalTrak/internal/config"
	"github.com/aalexander1088-svg/CalTrak/internal/database"
	"github.com/aalexander1088-svg/CalTrak/internal/handlers"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Connect to the document store
	db, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.AnthropicAPIKey == "" {
		log.Println("Warning: ANTHROPIC_API_KEY not set, food analysis will fail")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(db, cfg)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api")

	// Food analysis and draft editing (user-independent)
	api.Post("/analyze", h.AnalyzeFood)
	api.Post("/analyze/followup", h.FollowUp)
	api.Post("/draft/adjust", h.AdjustQuantity)
	api.Post("/draft/remove-item", h.RemoveDraftItem)
	api.Post("/goals/recommend", h.RecommendGoals)

	// Profile selection
	api.Get("/current-user", h.GetCurrentUser)
	api.Put("/current-user", h.SetCurrentUser)

	// User management and per-user data
	users := api.Group("/users")
	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Delete("/:username", h.DeleteUser)

	users.Get("/:username/today", h.GetToday)
	users.Post("/:username/meals", h.AddMeal)
	users.Delete("/:username/meals/:mealId", h.DeleteMeal)
	users.Post("/:username/meals/undo", h.UndoDelete)

	users.Get("/:username/recent-meals", h.GetRecentMeals)
	users.Delete("/:username/recent-meals/:mealId", h.RemoveRecentMeal)

	users.Get("/:username/goals", h.GetGoals)
	users.Put("/:username/goals", h.SaveGoals)

	users.Get("/:username/history", h.GetHistory)
	users.Post("/:username/history/archive", h.ArchiveDay)

	// Start server
	log.Printf("Starting server on port %s (%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
