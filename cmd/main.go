package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/culinara/recipevault/internal/config"
	"github.com/culinara/recipevault/internal/db"
	"github.com/culinara/recipevault/internal/handlers"
	"github.com/culinara/recipevault/internal/middleware"
	"github.com/culinara/recipevault/internal/services"
	"github.com/culinara/recipevault/internal/storage"
)

func main() {
	appLog := logrus.New()
	appLog.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		appLog.Fatalf("load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		appLog.Fatalf("auth jwt secret is required")
	}

	// Connect to MongoDB
	mongoDB := db.ConnectMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	appLog.Infof("connected to MongoDB database %q", cfg.Mongo.Database)

	// Initialize MinIO
	storage.InitMinio(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
	appLog.Infof("connected to MinIO at %s", cfg.Minio.Endpoint)

	middleware.Init(cfg.Auth.JWTSecret)
	services.InitAuthService(mongoDB, cfg.Auth.JWTSecret)
	services.InitRecipeService(mongoDB)
	handlers.InitAdminHandler(mongoDB)
	handlers.InitHandlers(appLog, cfg.IsProduction())

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/signup", handlers.SignupHandler)
	auth.Post("/login", handlers.LoginHandler)
	auth.Get("/me", middleware.AuthMiddleware, handlers.MeHandler)

	// Recipe Routes
	recipes := api.Group("/recipes", middleware.AuthMiddleware)
	recipes.Post("/", handlers.CreateRecipeHandler)
	recipes.Get("/", handlers.ListRecipesHandler)
	recipes.Get("/stats", handlers.RecipeStatsHandler)
	recipes.Get("/:id", handlers.GetRecipeHandler)
	recipes.Put("/:id", handlers.UpdateRecipeHandler)
	recipes.Delete("/:id", handlers.DeleteRecipeHandler)
	recipes.Patch("/:id/featured", handlers.ToggleFeaturedHandler)
	recipes.Post("/:id/image", handlers.UploadRecipeImageHandler)

	// Admin Routes
	admin := api.Group("/admin", middleware.AdminMiddleware)
	admin.Get("/users", handlers.ListUsersHandler)
	admin.Get("/users/:id", handlers.GetUserHandler)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "RecipeVault API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth": fiber.Map{
					"signup": "POST /api/auth/signup",
					"login":  "POST /api/auth/login",
					"me":     "GET /api/auth/me",
				},
				"recipes": fiber.Map{
					"create":         "POST /api/recipes",
					"getAll":         "GET /api/recipes",
					"getOne":         "GET /api/recipes/:id",
					"update":         "PUT /api/recipes/:id",
					"delete":         "DELETE /api/recipes/:id",
					"toggleFeatured": "PATCH /api/recipes/:id/featured",
					"uploadImage":    "POST /api/recipes/:id/image",
					"stats":          "GET /api/recipes/stats",
				},
				"health": "GET /api/health",
			},
		})
	})

	// Fallback for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	appLog.Infof("listening on %s", cfg.Server.Addr)
	appLog.Fatal(app.Listen(cfg.Server.Addr))
}
