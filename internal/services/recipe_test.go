package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/culinara/recipevault/internal/models"
)

// The admin gate on toggle-featured is checked before the record is even
// fetched, so a plain user is rejected without any store access.
func TestToggleFeaturedRejectsNonAdminBeforeFetch(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	_, err := ToggleFeatured(context.Background(), models.RoleUser, id)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ToggleFeatured(context.Background(), models.Role("guest"), id)
	assert.ErrorIs(t, err, ErrForbidden)
}
