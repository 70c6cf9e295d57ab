package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func parseToken(t *testing.T, token, secret string) (*JWTCustomClaims, error) {
	t.Helper()

	parsed, err := jwt.ParseWithClaims(token, &JWTCustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	return claims, nil
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, 3)
	require.NoError(t, err)

	claims, err := parseToken(t, token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, uint(3), claims.WorkspaceID)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateTokenUniqueJTI(t *testing.T) {
	first, err := GenerateToken(testSecret, 1, 1)
	require.NoError(t, err)
	second, err := GenerateToken(testSecret, 1, 1)
	require.NoError(t, err)

	firstClaims, err := parseToken(t, first, testSecret)
	require.NoError(t, err)
	secondClaims, err := parseToken(t, second, testSecret)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, 3)
	require.NoError(t, err)

	_, err = parseToken(t, token, "another-secret-another-secret-xx")
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := &JWTCustomClaims{
		UserID:      7,
		WorkspaceID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = parseToken(t, token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
