package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Users table with roles
	if err := createUsersTable(db); err != nil {
		return err
	}

	// 2. Work submissions table
	if err := createSubmissionsTable(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('student', 'teacher', 'admin')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for users table: %v", err)
		return err
	}
	return nil
}

func createSubmissionsTable(db *sql.DB) error {
	// student_id/teacher_id reference users by convention only. A real
	// FK constraint would block user deletion; removing a user must
	// neither block on nor cascade to their submissions.
	query := `
		CREATE TABLE IF NOT EXISTS submissions (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL,
			teacher_id INTEGER,
			subject TEXT NOT NULL,
			image_data TEXT,
			full_score INTEGER NOT NULL DEFAULT 100,
			ai_score INTEGER,
			final_score INTEGER,
			ai_feedback TEXT,
			teacher_notes TEXT,
			graded_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for submissions table: %v", err)
		return err
	}
	return nil
}
