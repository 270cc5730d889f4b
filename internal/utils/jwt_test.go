package utils

import (
	"strings"
	"testing"
	"time"

	"ltm_world/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)
	identity := "a@x.com"
	role := model.RoleUser

	tokenString, err := jwtUtil.GenerateToken(identity, role)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	// Compact JWS: header.payload.signature
	assert.Len(t, strings.Split(tokenString, "."), 3)

	// Validate the token to ensure it's well-formed and contains correct claims
	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, identity, claims.Identity)
	assert.Equal(t, role, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_ValidateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)
	identity := "a@x.com"
	role := model.RoleAdmin

	tokenString, _ := jwtUtil.GenerateToken(identity, role)

	claims, err := jwtUtil.ValidateToken(tokenString)

	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, identity, claims.Identity)
	assert.Equal(t, role, claims.Role)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_EmptyToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	_, err := jwtUtil.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestJWTUtil_ValidateToken_ExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	jwtUtil := NewJWTUtil("secret", 1).WithClock(func() time.Time { return issuedAt })

	tokenString, err := jwtUtil.GenerateToken("a@x.com", model.RoleUser)
	require.NoError(t, err)

	// Still valid 30 minutes in.
	jwtUtil.WithClock(func() time.Time { return issuedAt.Add(30 * time.Minute) })
	_, err = jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)

	// One second past expiry it must fail.
	jwtUtil.WithClock(func() time.Time { return issuedAt.Add(time.Hour + time.Second) })
	_, err = jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", 1)
	jwtUtil2 := NewJWTUtil("secret2", 1)

	tokenString, _ := jwtUtil1.GenerateToken("a@x.com", model.RoleUser)

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_TamperedToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)
	tokenString, err := jwtUtil.GenerateToken("a@x.com", model.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	flip := func(s string) string {
		b := []byte(s)
		i := len(b) / 2
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		return string(b)
	}

	// Mutating the payload or the signature must invalidate the token.
	tamperedPayload := strings.Join([]string{parts[0], flip(parts[1]), parts[2]}, ".")
	_, err = jwtUtil.ValidateToken(tamperedPayload)
	assert.Error(t, err)

	tamperedSig := strings.Join([]string{parts[0], parts[1], flip(parts[2])}, ".")
	_, err = jwtUtil.ValidateToken(tamperedSig)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_UnknownRole(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)
	tokenString, err := jwtUtil.GenerateToken("a@x.com", model.Role("root"))
	require.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateTokenWithRole(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)

	userToken, _ := jwtUtil.GenerateToken("a@x.com", model.RoleUser)
	adminToken, _ := jwtUtil.GenerateToken("b@x.com", model.RoleAdmin)

	_, err := jwtUtil.ValidateTokenWithRole(userToken, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrInsufficientRole)

	claims, err := jwtUtil.ValidateTokenWithRole(adminToken, model.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 1)
	// Create a token with a different signing method (e.g., HS384 instead of HS256)
	claims := &JWTClaims{
		Identity: "a@x.com",
		Role:     model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	// Sign with the same secret, as the key type is compatible for HMAC algorithms
	tokenString, _ := token.SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
}
