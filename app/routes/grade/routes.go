package grade

import (
	"github.com/gofiber/fiber/v2"

	"github.com/darksoultig/stuwork/app/grading"
)

func SetupGradeRoutes(app *fiber.App, svc *grading.Service) {
	app.Post("/grade", GradeAPI(svc))
}
