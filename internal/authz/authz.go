package authz

import "github.com/culinara/recipevault/internal/models"

// Level is the access required for an operation on a recipe.
type Level int

const (
	// LevelModify covers viewing, updating and deleting a recipe: the
	// owner or any admin qualifies.
	LevelModify Level = iota
	// LevelAdminOnly is reserved for operations independent of ownership,
	// such as toggling the featured flag.
	LevelAdminOnly
)

// CanAccess decides whether an actor may perform an operation on a recipe
// owned by ownerID. Admins satisfy every level; plain users satisfy
// LevelModify only on their own recipes.
func CanAccess(role models.Role, actorID, ownerID string, level Level) bool {
	if role == models.RoleAdmin {
		return true
	}
	if level == LevelAdminOnly {
		return false
	}
	return actorID != "" && actorID == ownerID
}
