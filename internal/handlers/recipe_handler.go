package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/culinara/recipevault/internal/models"
	"github.com/culinara/recipevault/internal/services"
	"github.com/culinara/recipevault/internal/validation"
)

// actor pulls the requester identity stored by the auth middleware.
func actor(c *fiber.Ctx) (models.Role, string) {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return models.Role(role), userID
}

// mapServiceError converts the service error taxonomy to a response.
func mapServiceError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "Recipe not found")
	case errors.Is(err, services.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "Not authorized to "+action+" this recipe")
	default:
		return respondInternal(c, "Error trying to "+action+" recipe", err)
	}
}

// CreateRecipeHandler validates the full payload and persists a new recipe
// owned by the requester.
func CreateRecipeHandler(c *fiber.Ctx) error {
	_, userID := actor(c)

	var input models.CreateRecipeInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := validation.Struct(input); errs != nil {
		return respondValidation(c, errs)
	}

	recipe, err := services.CreateRecipe(c.Context(), input, userID)
	if err != nil {
		return respondInternal(c, "Error creating recipe", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Recipe created successfully",
		"recipe":  recipe,
	})
}

// ListRecipesHandler returns a filtered, sorted page of recipes within the
// requester's scope.
func ListRecipesHandler(c *fiber.Ctx) error {
	role, userID := actor(c)

	var params services.ListParams
	if err := c.QueryParser(&params); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	if errs := validation.Struct(params); errs != nil {
		return respondValidation(c, errs)
	}

	recipes, meta, err := services.ListRecipes(c.Context(), role, userID, params)
	if err != nil {
		return respondInternal(c, "Error fetching recipes", err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"count":       len(recipes),
		"total":       meta.Total,
		"page":        meta.Page,
		"totalPages":  meta.TotalPages,
		"hasNextPage": meta.HasNextPage,
		"hasPrevPage": meta.HasPrevPage,
		"recipes":     recipes,
	})
}

// GetRecipeHandler fetches one recipe. Absence is reported before the
// ownership check.
func GetRecipeHandler(c *fiber.Ctx) error {
	role, userID := actor(c)

	recipe, err := services.GetRecipeByID(c.Context(), role, userID, c.Params("id"))
	if err != nil {
		return mapServiceError(c, err, "view")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"recipe":  recipe,
	})
}

// UpdateRecipeHandler applies a partial update to a recipe the requester may
// modify.
func UpdateRecipeHandler(c *fiber.Ctx) error {
	role, userID := actor(c)

	var input models.UpdateRecipeInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := validation.Struct(input); errs != nil {
		return respondValidation(c, errs)
	}

	recipe, err := services.UpdateRecipe(c.Context(), role, userID, c.Params("id"), input)
	if err != nil {
		return mapServiceError(c, err, "update")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recipe updated successfully",
		"recipe":  recipe,
	})
}

// DeleteRecipeHandler permanently removes a recipe.
func DeleteRecipeHandler(c *fiber.Ctx) error {
	role, userID := actor(c)

	if err := services.DeleteRecipe(c.Context(), role, userID, c.Params("id")); err != nil {
		return mapServiceError(c, err, "delete")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recipe deleted successfully",
	})
}

// ToggleFeaturedHandler flips the featured flag. Admin only.
func ToggleFeaturedHandler(c *fiber.Ctx) error {
	role, _ := actor(c)

	recipe, err := services.ToggleFeatured(c.Context(), role, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return respondError(c, fiber.StatusForbidden, "Only admins can feature recipes")
		}
		return mapServiceError(c, err, "feature")
	}

	message := "Recipe unfeatured successfully"
	if recipe.IsFeatured {
		message = "Recipe featured successfully"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"recipe":  recipe,
	})
}

// UploadRecipeImageHandler stores an uploaded image and points the recipe at
// it.
func UploadRecipeImageHandler(c *fiber.Ctx) error {
	role, userID := actor(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Image file is required")
	}

	recipe, err := services.AttachRecipeImage(c.Context(), role, userID, c.Params("id"), fileHeader)
	if err != nil {
		return mapServiceError(c, err, "update")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recipe image updated successfully",
		"recipe":  recipe,
	})
}

// RecipeStatsHandler aggregates recipe statistics within the requester's
// scope.
func RecipeStatsHandler(c *fiber.Ctx) error {
	role, userID := actor(c)

	stats, err := services.ComputeStats(c.Context(), role, userID)
	if err != nil {
		return respondInternal(c, "Error fetching recipe statistics", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
