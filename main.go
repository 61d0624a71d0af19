package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/darksoultig/stuwork/app/config"
	"github.com/darksoultig/stuwork/app/database"
	"github.com/darksoultig/stuwork/app/grading"
	"github.com/darksoultig/stuwork/app/routes/auth"
	"github.com/darksoultig/stuwork/app/routes/grade"
	"github.com/darksoultig/stuwork/app/routes/submissions"
	"github.com/darksoultig/stuwork/app/routes/users"
)

// jsonErrorHandler turns unhandled errors into the {"error": message}
// body every endpoint uses.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// A missing API key disables grading only; the rest of the service
	// still runs and /health reports the flag.
	var grader grading.Grader
	if config.GeminiAPIKey != "" {
		g, err := grading.NewGeminiGrader(context.Background(), config.GeminiAPIKey)
		if err != nil {
			log.Printf("Failed to initialize Gemini client, AI grading disabled: %v", err)
		} else {
			grader = g
			log.Println("Gemini grader initialized")
		}
	}
	gradingService := grading.NewService(grader)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: jsonErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Request-ID passthrough for log correlation
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		return c.Next()
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":           "ok",
			"graderConfigured": gradingService.Configured(),
		})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	users.SetupUsersRoutes(app, config.GetDB())
	submissions.SetupSubmissionsRoutes(app, config.GetDB())
	grade.SetupGradeRoutes(app, gradingService)

	port := config.GetEnv("PORT", "5000")
	log.Printf("Starting Stuwork backend on :%s", port)
	log.Fatal(app.Listen(":" + port))
}
