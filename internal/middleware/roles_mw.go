package middleware

import (
	"log"

	"ltm_world/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware that only passes requests whose token
// role is one of allowedRoles. Comparison is exact and case-sensitive. A wrong
// role produces the same denial shape as a missing or invalid token.
func RoleMiddleware(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			log.Printf("auth: role check before JWT middleware, denying")
			unauthorized(c)
			return
		}

		userRole, ok := roleVal.(model.Role)
		if !ok {
			unauthorized(c)
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		log.Printf("auth: role %q lacks required role", userRole)
		unauthorized(c)
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
