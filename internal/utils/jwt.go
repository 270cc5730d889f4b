package utils

import (
	"errors"
	"fmt"
	"time"

	"ltm_world/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken     = errors.New("token is empty")
	ErrInsufficientRole = errors.New("token role does not match required role")
)

// JWTClaims custom claims for JWT
type JWTClaims struct {
	Identity string     `json:"identity"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey       string
	expirationHours int64
	now             func() time.Time // injected for deterministic expiry tests
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (ju *JWTUtil) WithClock(now func() time.Time) *JWTUtil {
	ju.now = now
	return ju
}

// GenerateToken generates a new JWT token asserting identity and role
func (ju *JWTUtil) GenerateToken(identity string, role model.Role) (string, error) {
	issuedAt := ju.now()
	claims := &JWTClaims{
		Identity: identity,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour * time.Duration(ju.expirationHours))),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Subject:   identity,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the JWT token and returns its claims. It fails on
// empty input before any signature work, and on signature mismatch, malformed
// structure, expiry, or an unknown embedded role.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	}, jwt.WithTimeFunc(ju.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("unknown role in token: %q", claims.Role)
	}
	return claims, nil
}

// ValidateTokenWithRole validates the token and additionally requires the
// embedded role to equal required exactly (case-sensitive).
func (ju *JWTUtil) ValidateTokenWithRole(tokenString string, required model.Role) (*JWTClaims, error) {
	claims, err := ju.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != required {
		return nil, ErrInsufficientRole
	}
	return claims, nil
}
