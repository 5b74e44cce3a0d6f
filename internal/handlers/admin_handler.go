package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/culinara/recipevault/internal/models"
	"github.com/culinara/recipevault/internal/services"
)

var adminUserCollection *mongo.Collection

// InitAdminHandler wires the admin handlers to the users collection.
func InitAdminHandler(db *mongo.Database) {
	adminUserCollection = db.Collection("users")
}

// ListUsersHandler returns all accounts, without password hashes.
func ListUsersHandler(c *fiber.Ctx) error {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := adminUserCollection.Find(c.Context(), bson.M{}, opts)
	if err != nil {
		return respondInternal(c, "Failed to fetch users", err)
	}
	defer cursor.Close(c.Context())

	users := []models.User{}
	if err := cursor.All(c.Context(), &users); err != nil {
		return respondInternal(c, "Failed to fetch users", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// GetUserHandler returns a single account by id.
func GetUserHandler(c *fiber.Ctx) error {
	user, err := services.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		return respondInternal(c, "Failed to fetch user", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
