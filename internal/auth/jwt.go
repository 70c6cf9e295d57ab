package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTCustomClaims struct {
	UserID      uint `json:"user_id"`
	WorkspaceID uint `json:"workspace_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a one-hour HS256 access token scoping the user to
// a single workspace.
func GenerateToken(secret string, userID, workspaceID uint) (string, error) {
	claims := &JWTCustomClaims{
		UserID:      userID,
		WorkspaceID: workspaceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
