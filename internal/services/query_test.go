package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/culinara/recipevault/internal/models"
)

func TestBuildListFilterScoping(t *testing.T) {
	actorID := primitive.NewObjectID()

	t.Run("non-admin is always scoped to own recipes", func(t *testing.T) {
		filter := buildListFilter(models.RoleUser, actorID, ListParams{})
		assert.Equal(t, actorID, filter["userId"])
	})

	t.Run("admin sees all owners", func(t *testing.T) {
		filter := buildListFilter(models.RoleAdmin, actorID, ListParams{})
		_, scoped := filter["userId"]
		assert.False(t, scoped)
	})

	t.Run("other filters cannot remove the scope", func(t *testing.T) {
		filter := buildListFilter(models.RoleUser, actorID, ListParams{
			Difficulty: "hard",
			Category:   "dinner",
			Featured:   "true",
			Search:     "stew",
		})
		assert.Equal(t, actorID, filter["userId"])
		assert.Equal(t, "hard", filter["difficulty"])
		assert.Equal(t, "dinner", filter["category"])
		assert.Equal(t, true, filter["isFeatured"])
	})
}

func TestBuildListFilterSearch(t *testing.T) {
	actorID := primitive.NewObjectID()

	filter := buildListFilter(models.RoleAdmin, actorID, ListParams{Search: "wellington"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "search must produce an $or clause")
	require.Len(t, or, 2)

	title, ok := or[0]["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "wellington", title.Pattern)
	assert.Equal(t, "i", title.Options, "search must be case-insensitive")

	desc, ok := or[1]["description"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", desc.Options)
}

func TestBuildListFilterSearchQuotesMetaChars(t *testing.T) {
	filter := buildListFilter(models.RoleAdmin, primitive.NewObjectID(), ListParams{Search: "mac & cheese ("})
	or := filter["$or"].([]bson.M)
	title := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `mac & cheese \(`, title.Pattern)
}

func TestBuildListFilterFeaturedFalseIsNoop(t *testing.T) {
	filter := buildListFilter(models.RoleAdmin, primitive.NewObjectID(), ListParams{Featured: "false"})
	_, present := filter["isFeatured"]
	assert.False(t, present)
}

func TestBuildSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, buildSort("", ""))
	assert.Equal(t, bson.D{{Key: "title", Value: 1}}, buildSort("title", "asc"))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, buildSort("rating", "desc"))
}

func TestClampPaging(t *testing.T) {
	tests := []struct {
		name                      string
		page, limit               int
		wantPage, wantLimit, skip int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"limit capped at 100", 1, 500, 1, 100, 0},
		{"negative page clamps to 1", -3, 10, 1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, skip := clampPaging(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.skip, skip)
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	t.Run("total 25 with limit 10 gives 3 pages", func(t *testing.T) {
		meta := newPageMeta(25, 1, 10)
		assert.Equal(t, 3, meta.TotalPages)
		assert.False(t, meta.HasPrevPage)
		assert.True(t, meta.HasNextPage)
	})

	t.Run("last page has no next", func(t *testing.T) {
		meta := newPageMeta(25, 3, 10)
		assert.False(t, meta.HasNextPage)
		assert.True(t, meta.HasPrevPage)
	})

	t.Run("empty result set", func(t *testing.T) {
		meta := newPageMeta(0, 1, 10)
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
		assert.False(t, meta.HasPrevPage)
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		meta := newPageMeta(20, 2, 10)
		assert.Equal(t, 2, meta.TotalPages)
		assert.False(t, meta.HasNextPage)
	})
}
