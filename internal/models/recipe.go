package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultImageURL is used when a recipe is created without an image.
const DefaultImageURL = "https://images.unsplash.com/photo-1546548970-71785318a17b?w=800"

type Ingredient struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Quantity string `bson:"quantity" json:"quantity" validate:"required"`
	Unit     string `bson:"unit" json:"unit" validate:"required"`
}

type Recipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	Category     string             `bson:"category" json:"category"`
	PrepTime     int                `bson:"prepTime" json:"prepTime"`
	CookTime     int                `bson:"cookTime" json:"cookTime"`
	Servings     int                `bson:"servings" json:"servings"`
	Ingredients  []Ingredient       `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Rating       float64            `bson:"rating" json:"rating"`
	RatingCount  int                `bson:"ratingCount" json:"ratingCount"`
	IsFeatured   bool               `bson:"isFeatured" json:"isFeatured"`
	ChefNotes    string             `bson:"chefNotes" json:"chefNotes"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecipeWithOwner is a recipe joined with its owner's identity for display.
type RecipeWithOwner struct {
	Recipe `bson:",inline"`
	Owner  *OwnerInfo `bson:"owner,omitempty" json:"owner,omitempty"`
}

// CreateRecipeInput is the full field set accepted on create.
type CreateRecipeInput struct {
	Title        string       `json:"title" validate:"required,min=3,max=100"`
	Description  string       `json:"description" validate:"required,max=500"`
	ImageURL     string       `json:"imageUrl" validate:"omitempty,url"`
	Difficulty   string       `json:"difficulty" validate:"required,oneof=easy medium hard expert"`
	Category     string       `json:"category" validate:"required,oneof=breakfast lunch dinner dessert snack beverage"`
	PrepTime     int          `json:"prepTime" validate:"required,min=1,max=480"`
	CookTime     int          `json:"cookTime" validate:"required,min=1,max=720"`
	Servings     int          `json:"servings" validate:"required,min=1,max=50"`
	Ingredients  []Ingredient `json:"ingredients" validate:"required,min=2,max=30,dive"`
	Instructions []string     `json:"instructions" validate:"required,min=2,max=20,dive,min=5,max=300"`
	ChefNotes    string       `json:"chefNotes" validate:"omitempty,max=300"`
}

// UpdateRecipeInput carries a partial update; nil fields keep their prior values.
type UpdateRecipeInput struct {
	Title        *string       `json:"title" validate:"omitempty,min=3,max=100"`
	Description  *string       `json:"description" validate:"omitempty,max=500"`
	ImageURL     *string       `json:"imageUrl" validate:"omitempty,url"`
	Difficulty   *string       `json:"difficulty" validate:"omitempty,oneof=easy medium hard expert"`
	Category     *string       `json:"category" validate:"omitempty,oneof=breakfast lunch dinner dessert snack beverage"`
	PrepTime     *int          `json:"prepTime" validate:"omitempty,min=1,max=480"`
	CookTime     *int          `json:"cookTime" validate:"omitempty,min=1,max=720"`
	Servings     *int          `json:"servings" validate:"omitempty,min=1,max=50"`
	Ingredients  *[]Ingredient `json:"ingredients" validate:"omitempty,min=2,max=30,dive"`
	Instructions *[]string     `json:"instructions" validate:"omitempty,min=2,max=20,dive,min=5,max=300"`
	ChefNotes    *string       `json:"chefNotes" validate:"omitempty,max=300"`
}

// NewRecipe normalizes a create payload into a persistable record, assigning
// ownership and filling the implicit defaults in one place.
func NewRecipe(input CreateRecipeInput, ownerID primitive.ObjectID) Recipe {
	now := time.Now()

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	return Recipe{
		ID:           primitive.NewObjectID(),
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     imageURL,
		Difficulty:   input.Difficulty,
		Category:     input.Category,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Rating:       0,
		RatingCount:  0,
		IsFeatured:   false,
		ChefNotes:    input.ChefNotes,
		UserID:       ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
