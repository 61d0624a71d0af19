package grade

import (
	"github.com/gofiber/fiber/v2"

	"github.com/darksoultig/stuwork/app/apperr"
	"github.com/darksoultig/stuwork/app/grading"
)

// GradeAPI runs the AI grading workflow for an uploaded work image. It
// does not persist anything; the caller stores the returned score and
// feedback against a submission if it wants to keep them.
func GradeAPI(svc *grading.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type GradeRequest struct {
			Image     string `json:"image"`
			Subject   string `json:"subject"`
			FullScore int    `json:"fullScore"`
			MimeType  string `json:"mimeType"`
		}

		// Check grader availability before touching the body, so an
		// unconfigured service answers 503 regardless of input.
		if !svc.Configured() {
			return c.Status(503).JSON(fiber.Map{"error": grading.ErrNotConfigured.Error()})
		}

		var req GradeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		result, err := svc.Grade(c.UserContext(), grading.GradeInput{
			ImageBase64: req.Image,
			Subject:     req.Subject,
			FullScore:   req.FullScore,
			MimeType:    req.MimeType,
		})
		if err != nil {
			return c.Status(apperr.HTTPStatusOf(err)).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{
			"success":   true,
			"score":     result.Score,
			"fullScore": result.FullScore,
			"feedback":  result.Feedback,
		})
	}
}
