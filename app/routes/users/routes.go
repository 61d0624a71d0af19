package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/users", func(c *fiber.Ctx) error {
		return GetUsersAPI(c, db)
	})
	app.Delete("/users/:id", func(c *fiber.Ctx) error {
		return DeleteUserAPI(c, db)
	})
}
