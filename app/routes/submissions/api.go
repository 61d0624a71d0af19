package submissions

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/darksoultig/stuwork/app/database"
	"github.com/darksoultig/stuwork/app/models"
)

var validate = validator.New()

func GetSubmissionsAPI(c *fiber.Ctx, db *sql.DB) error {
	submissions, err := database.GetAllSubmissions(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch submissions"})
	}

	if submissions == nil {
		submissions = []*models.Submission{}
	}

	return c.JSON(fiber.Map{"submissions": submissions})
}

func CreateSubmissionAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateSubmissionRequest struct {
		StudentID int    `json:"studentId" validate:"required"`
		Subject   string `json:"subject" validate:"required"`
		Image     string `json:"image"`
		FullScore int    `json:"fullScore"`
	}

	var req CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	if req.FullScore <= 0 {
		req.FullScore = 100
	}

	submission := &models.Submission{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		FullScore: req.FullScore,
	}
	if req.Image != "" {
		submission.ImageData = &req.Image
	}

	if err := database.CreateSubmission(db, submission); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create submission"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"submission": submission,
	})
}

// SaveAIResultAPI records a grading result against a submission. The
// grading endpoint itself never persists anything; its caller posts the
// returned score and feedback here.
func SaveAIResultAPI(c *fiber.Ctx, db *sql.DB) error {
	type AIResultRequest struct {
		AIScore    *int   `json:"aiScore" validate:"required"`
		AIFeedback string `json:"aiFeedback" validate:"required"`
	}

	submissionID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	var req AIResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	if err := database.SaveAIResult(db, submissionID, *req.AIScore, req.AIFeedback); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save result"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func ReviewSubmissionAPI(c *fiber.Ctx, db *sql.DB) error {
	type ReviewRequest struct {
		TeacherID    int    `json:"teacherId" validate:"required"`
		FinalScore   *int   `json:"finalScore" validate:"required"`
		TeacherNotes string `json:"teacherNotes"`
	}

	submissionID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	if err := database.SaveTeacherReview(db, submissionID, req.TeacherID, *req.FinalScore, req.TeacherNotes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save review"})
	}

	return c.JSON(fiber.Map{"success": true})
}
