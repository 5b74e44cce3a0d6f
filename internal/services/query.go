package services

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/culinara/recipevault/internal/models"
)

// ListParams are the query parameters accepted by the recipe listing
// endpoint. They are validated at the handler boundary before the filter is
// built.
type ListParams struct {
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard expert"`
	Category   string `query:"category" validate:"omitempty,oneof=breakfast lunch dinner dessert snack beverage"`
	Search     string `query:"search" validate:"omitempty,min=1,max=50"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=createdAt title rating prepTime cookTime difficulty"`
	Order      string `query:"order" validate:"omitempty,oneof=asc desc"`
	Featured   string `query:"featured" validate:"omitempty,oneof=true false"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// PageMeta is the pagination block returned with every listing response.
type PageMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// scopeFilter restricts non-admin actors to their own recipes. Admins see
// everything.
func scopeFilter(role models.Role, actorID primitive.ObjectID) bson.M {
	if role == models.RoleAdmin {
		return bson.M{}
	}
	return bson.M{"userId": actorID}
}

// buildListFilter translates list parameters into a store filter. The
// ownership scope is applied first so other constraints can never widen it.
func buildListFilter(role models.Role, actorID primitive.ObjectID, p ListParams) bson.M {
	filter := scopeFilter(role, actorID)

	if p.Difficulty != "" {
		filter["difficulty"] = p.Difficulty
	}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.Featured == "true" {
		filter["isFeatured"] = true
	}
	if p.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(p.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
		}
	}

	return filter
}

// buildSort maps sortBy/order onto a store sort spec, defaulting to newest
// first.
func buildSort(sortBy, order string) bson.D {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: sortBy, Value: dir}}
}

// clampPaging applies defaults and clamps page/limit so skip can never go
// negative, even if this is called outside the validated handler path.
func clampPaging(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	skip := (page - 1) * limit
	return page, limit, skip
}

// newPageMeta derives the pagination block from the total count.
func newPageMeta(total int64, page, limit int) PageMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageMeta{
		Total:       total,
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
