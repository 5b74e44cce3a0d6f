package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/culinara/recipevault/internal/services"
	"github.com/culinara/recipevault/internal/validation"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupHandler registers a new account. The role is always "user".
func SignupHandler(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := validation.Struct(req); errs != nil {
		return respondValidation(c, errs)
	}

	user, err := services.RegisterUser(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return respondError(c, fiber.StatusBadRequest, "Email already in use")
		}
		return respondInternal(c, "Error registering user", err)
	}

	token, err := services.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		return respondInternal(c, "Error registering user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

// LoginHandler authenticates a user and issues a token.
func LoginHandler(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, user, err := services.LoginUser(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return respondInternal(c, "Error logging in", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// MeHandler returns the authenticated user's record.
func MeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := services.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		return respondInternal(c, "Error fetching user", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
