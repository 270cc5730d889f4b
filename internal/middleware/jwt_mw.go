package middleware

import (
	"log"
	"net/http"
	"strings"

	"ltm_world/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthIdentityKey = "authIdentity"
	AuthRoleKey     = "authRole"
)

// unauthorized aborts with the single denial shape used for every auth
// failure. Missing, malformed, expired and forged tokens must not be
// distinguishable by the caller; the detail lives in server logs only.
func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the token's identity and role claims are placed in the request context for
// downstream handlers.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			unauthorized(c)
			return
		}

		tokenString := parts[1]
		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			log.Printf("auth: token rejected: %v", err)
			unauthorized(c)
			return
		}

		// Set user information in context
		c.Set(AuthIdentityKey, claims.Identity)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
