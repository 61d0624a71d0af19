package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/darksoultig/stuwork/app/database"
	"github.com/darksoultig/stuwork/app/models"
)

func GetUsersAPI(c *fiber.Ctx, db *sql.DB) error {
	users, err := database.GetAllUsers(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	// Ensure users is never nil
	if users == nil {
		users = []*models.User{}
	}

	return c.JSON(fiber.Map{"users": users})
}

func DeleteUserAPI(c *fiber.Ctx, db *sql.DB) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := database.DeleteUser(db, userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"success": true})
}
