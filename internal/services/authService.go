package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/culinara/recipevault/internal/models"
)

var (
	jwtSecret      string
	userCollection *mongo.Collection
)

// InitAuthService wires the auth service to its collection and signing secret.
func InitAuthService(db *mongo.Database, secret string) {
	userCollection = db.Collection("users")
	jwtSecret = secret
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT generates a JWT token with user ID and role
func GenerateJWT(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour * 4).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// RegisterUser creates a new account. The role is always RoleUser; admins are
// provisioned directly in the store.
func RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	var existing models.User
	err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}
	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		// The unique email index catches duplicates that race past the
		// FindOne check above.
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// LoginUser authenticates a user and returns a JWT plus the user record.
func LoginUser(ctx context.Context, email, password string) (string, models.User, error) {
	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		return "", models.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

// GetUserByID loads a user record without its password hash.
func GetUserByID(ctx context.Context, idHex string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	err = userCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}
