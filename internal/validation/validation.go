package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates v against its `validate` tags and returns one message per
// failing field, suitable for the `errors` array of a 400 response.
func Struct(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, message(fe))
	}
	return messages
}

func message(fe validator.FieldError) string {
	// Element-level failures carry the slice index in their namespace,
	// e.g. "CreateRecipeInput.Instructions[3]".
	ns := fe.Namespace()
	if strings.Contains(ns, "Ingredients[") {
		return "Ingredient name, quantity and unit are required"
	}
	if strings.Contains(ns, "Instructions[") {
		return "Each step must be between 5 and 300 characters"
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

var fieldMessages = map[string]string{
	"Title":        "Title must be between 3 and 100 characters",
	"Description":  "Description is required and cannot exceed 500 characters",
	"ImageURL":     "Image URL must be valid",
	"Difficulty":   "Difficulty must be easy, medium, hard, or expert",
	"Category":     "Category must be breakfast, lunch, dinner, dessert, snack, or beverage",
	"PrepTime":     "Prep time must be between 1 and 480 minutes",
	"CookTime":     "Cook time must be between 1 and 720 minutes",
	"Servings":     "Servings must be between 1 and 50",
	"Ingredients":  "Must have between 2 and 30 ingredients",
	"Instructions": "Must have between 2 and 20 instruction steps",
	"ChefNotes":    "Chef notes cannot exceed 300 characters",
	"Name":         "Name must be between 2 and 50 characters",
	"Email":        "Email must be valid",
	"Password":     "Password must be at least 6 characters",
}
