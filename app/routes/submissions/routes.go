package submissions

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupSubmissionsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/submissions", func(c *fiber.Ctx) error {
		return GetSubmissionsAPI(c, db)
	})
	app.Post("/submissions", func(c *fiber.Ctx) error {
		return CreateSubmissionAPI(c, db)
	})
	app.Put("/submissions/:id/ai-result", func(c *fiber.Ctx) error {
		return SaveAIResultAPI(c, db)
	})
	app.Put("/submissions/:id/review", func(c *fiber.Ctx) error {
		return ReviewSubmissionAPI(c, db)
	})
}
