package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/culinara/recipevault/internal/authz"
	"github.com/culinara/recipevault/internal/models"
	"github.com/culinara/recipevault/internal/storage"
)

var recipeCollection *mongo.Collection

// InitRecipeService wires the recipe service to its collection.
func InitRecipeService(db *mongo.Database) {
	recipeCollection = db.Collection("recipes")
}

// CreateRecipe normalizes the payload and persists a new recipe owned by the
// requester.
func CreateRecipe(ctx context.Context, input models.CreateRecipeInput, ownerHex string) (models.Recipe, error) {
	ownerID, err := primitive.ObjectIDFromHex(ownerHex)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("invalid owner id: %w", err)
	}

	recipe := models.NewRecipe(input, ownerID)
	if _, err := recipeCollection.InsertOne(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("failed to save recipe: %w", err)
	}
	return recipe, nil
}

// ownerLookupStages joins the owning user's identity onto each recipe.
func ownerLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{"owner.password": 0}}},
	}
}

// ListRecipes returns one page of recipes visible to the actor, with owner
// identity joined, plus pagination metadata.
func ListRecipes(ctx context.Context, role models.Role, actorHex string, p ListParams) ([]models.RecipeWithOwner, PageMeta, error) {
	actorID, err := primitive.ObjectIDFromHex(actorHex)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("invalid actor id: %w", err)
	}

	filter := buildListFilter(role, actorID, p)
	page, limit, skip := clampPaging(p.Page, p.Limit)

	total, err := recipeCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("failed to count recipes: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: buildSort(p.SortBy, p.Order)}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := recipeCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	defer cursor.Close(ctx)

	recipes := []models.RecipeWithOwner{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, PageMeta{}, fmt.Errorf("error decoding recipes: %w", err)
	}

	return recipes, newPageMeta(total, page, limit), nil
}

// fetchRecipe loads a recipe by id, mapping bad ids and missing documents to
// ErrNotFound. Absence is reported before any authorization decision.
func fetchRecipe(ctx context.Context, idHex string) (models.Recipe, error) {
	objID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return models.Recipe{}, ErrNotFound
	}

	var recipe models.Recipe
	err = recipeCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&recipe)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Recipe{}, ErrNotFound
		}
		return models.Recipe{}, fmt.Errorf("failed to fetch recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipeByID fetches a single recipe with owner identity, enforcing the
// view-level access rule.
func GetRecipeByID(ctx context.Context, role models.Role, actorHex, idHex string) (models.RecipeWithOwner, error) {
	recipe, err := fetchRecipe(ctx, idHex)
	if err != nil {
		return models.RecipeWithOwner{}, err
	}

	if !authz.CanAccess(role, actorHex, recipe.UserID.Hex(), authz.LevelModify) {
		return models.RecipeWithOwner{}, ErrForbidden
	}

	result := models.RecipeWithOwner{Recipe: recipe}
	var owner models.OwnerInfo
	if err := userCollection.FindOne(ctx, bson.M{"_id": recipe.UserID}).Decode(&owner); err == nil {
		result.Owner = &owner
	}
	return result, nil
}

// UpdateRecipe applies a partial update; omitted fields keep their prior
// values. Ownership is immutable.
func UpdateRecipe(ctx context.Context, role models.Role, actorHex, idHex string, input models.UpdateRecipeInput) (models.Recipe, error) {
	recipe, err := fetchRecipe(ctx, idHex)
	if err != nil {
		return models.Recipe{}, err
	}

	if !authz.CanAccess(role, actorHex, recipe.UserID.Hex(), authz.LevelModify) {
		return models.Recipe{}, ErrForbidden
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.ImageURL != nil {
		set["imageUrl"] = *input.ImageURL
	}
	if input.Difficulty != nil {
		set["difficulty"] = *input.Difficulty
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.PrepTime != nil {
		set["prepTime"] = *input.PrepTime
	}
	if input.CookTime != nil {
		set["cookTime"] = *input.CookTime
	}
	if input.Servings != nil {
		set["servings"] = *input.Servings
	}
	if input.Ingredients != nil {
		set["ingredients"] = *input.Ingredients
	}
	if input.Instructions != nil {
		set["instructions"] = *input.Instructions
	}
	if input.ChefNotes != nil {
		set["chefNotes"] = *input.ChefNotes
	}

	return applyUpdate(ctx, recipe.ID, set)
}

// applyUpdate persists a $set and returns the updated document.
func applyUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Recipe, error) {
	var updated models.Recipe
	err := recipeCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to update recipe: %w", err)
	}
	return updated, nil
}

// DeleteRecipe permanently removes a recipe after the modify-level check.
func DeleteRecipe(ctx context.Context, role models.Role, actorHex, idHex string) error {
	recipe, err := fetchRecipe(ctx, idHex)
	if err != nil {
		return err
	}

	if !authz.CanAccess(role, actorHex, recipe.UserID.Hex(), authz.LevelModify) {
		return ErrForbidden
	}

	if _, err := recipeCollection.DeleteOne(ctx, bson.M{"_id": recipe.ID}); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// ToggleFeatured flips the featured flag. Admin-only, checked before the
// record is even fetched; ownership plays no part.
func ToggleFeatured(ctx context.Context, role models.Role, idHex string) (models.Recipe, error) {
	if !authz.CanAccess(role, "", "", authz.LevelAdminOnly) {
		return models.Recipe{}, ErrForbidden
	}

	recipe, err := fetchRecipe(ctx, idHex)
	if err != nil {
		return models.Recipe{}, err
	}

	return applyUpdate(ctx, recipe.ID, bson.M{
		"isFeatured": !recipe.IsFeatured,
		"updatedAt":  time.Now(),
	})
}

// AttachRecipeImage stores an uploaded image and points the recipe's
// imageUrl at it.
func AttachRecipeImage(ctx context.Context, role models.Role, actorHex, idHex string, fileHeader *multipart.FileHeader) (models.Recipe, error) {
	recipe, err := fetchRecipe(ctx, idHex)
	if err != nil {
		return models.Recipe{}, err
	}

	if !authz.CanAccess(role, actorHex, recipe.UserID.Hex(), authz.LevelModify) {
		return models.Recipe{}, ErrForbidden
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to read image: %w", err)
	}

	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), fileHeader.Filename)
	_, err = storage.MinioClient.PutObject(
		ctx,
		storage.Bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
	)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to upload image: %w", err)
	}

	return applyUpdate(ctx, recipe.ID, bson.M{
		"imageUrl":  storage.ObjectURL(objectName),
		"updatedAt": time.Now(),
	})
}
