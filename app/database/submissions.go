package database

import (
	"database/sql"

	"github.com/darksoultig/stuwork/app/models"
)

func CreateSubmission(db *sql.DB, s *models.Submission) error {
	query := `INSERT INTO submissions (student_id, subject, image_data, full_score)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	return db.QueryRow(query, s.StudentID, s.Subject, s.ImageData, s.FullScore).
		Scan(&s.ID, &s.CreatedAt)
}

func GetSubmissionByID(db *sql.DB, submissionID int) (*models.Submission, error) {
	s := &models.Submission{}
	query := `SELECT id, student_id, teacher_id, subject, image_data, full_score,
					 ai_score, final_score, ai_feedback, teacher_notes, graded_at, created_at
			  FROM submissions WHERE id = $1`

	err := db.QueryRow(query, submissionID).Scan(
		&s.ID, &s.StudentID, &s.TeacherID, &s.Subject, &s.ImageData, &s.FullScore,
		&s.AIScore, &s.FinalScore, &s.AIFeedback, &s.TeacherNotes, &s.GradedAt, &s.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetAllSubmissions returns every submission joined with the student's
// name, newest first.
func GetAllSubmissions(db *sql.DB) ([]*models.Submission, error) {
	query := `
		SELECT s.id, s.student_id, s.teacher_id, s.subject, s.image_data, s.full_score,
			   s.ai_score, s.final_score, s.ai_feedback, s.teacher_notes, s.graded_at,
			   s.created_at, u.name AS student_name
		FROM submissions s
		JOIN users u ON s.student_id = u.id
		ORDER BY s.created_at DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(
			&s.ID, &s.StudentID, &s.TeacherID, &s.Subject, &s.ImageData, &s.FullScore,
			&s.AIScore, &s.FinalScore, &s.AIFeedback, &s.TeacherNotes, &s.GradedAt,
			&s.CreatedAt, &s.StudentName,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, &s)
	}
	return submissions, rows.Err()
}

// SaveAIResult stores a grading result produced by the AI workflow and
// stamps graded_at. Grading itself never writes; its callers do.
func SaveAIResult(db *sql.DB, submissionID int, aiScore int, aiFeedback string) error {
	query := `UPDATE submissions
			  SET ai_score = $1, ai_feedback = $2, graded_at = NOW()
			  WHERE id = $3`
	result, err := db.Exec(query, aiScore, aiFeedback, submissionID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SaveTeacherReview stores the human reviewer's final score and notes.
func SaveTeacherReview(db *sql.DB, submissionID int, teacherID int, finalScore int, notes string) error {
	query := `UPDATE submissions
			  SET teacher_id = $1, final_score = $2, teacher_notes = $3
			  WHERE id = $4`
	result, err := db.Exec(query, teacherID, finalScore, notes, submissionID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
