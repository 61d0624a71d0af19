package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", RegisterAPI)
	app.Post("/login", LoginAPI)
}
