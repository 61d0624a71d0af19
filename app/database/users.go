package database

import (
	"database/sql"
	"errors"

	"github.com/darksoultig/stuwork/app/models"
	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate email).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (name, email, password_hash, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	return db.QueryRow(query, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password_hash, role, created_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, name, email, role, created_at
			  FROM users ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func DeleteUser(db *sql.DB, userID int) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := db.Exec(query, userID)
	return err
}
