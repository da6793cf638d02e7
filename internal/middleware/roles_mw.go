package middleware

import (
	"net/http"

	"farmlink/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "role not found in token, ensure JWT middleware runs first"})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "invalid role type in token"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "access denied"})
			return
		}

		c.Next()
	}
}

// FarmerMiddleware restricts a route to farmer accounts
func FarmerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleFarmer)
}

// VendorMiddleware restricts a route to vendor accounts
func VendorMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleVendor)
}
