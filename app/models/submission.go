package models

import "time"

// Submission is one piece of student work. The AI columns are filled in
// when a grading result is stored; the final_score/teacher_notes columns
// belong to the human reviewer.
type Submission struct {
	ID           int        `json:"id"`
	StudentID    int        `json:"student_id" validate:"required"`
	TeacherID    *int       `json:"teacher_id,omitempty"`
	Subject      string     `json:"subject" validate:"required"`
	ImageData    *string    `json:"image_data,omitempty"`
	FullScore    int        `json:"full_score"`
	AIScore      *int       `json:"ai_score,omitempty"`
	FinalScore   *int       `json:"final_score,omitempty"`
	AIFeedback   *string    `json:"ai_feedback,omitempty"`
	TeacherNotes *string    `json:"teacher_notes,omitempty"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	// StudentName is populated by queries that join against users.
	StudentName string `json:"student_name,omitempty"`
}
