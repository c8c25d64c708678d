package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boxfit/gym-scheduler/internal/models"
)

// RequireManager is the single capability gate for privileged routes.
// Role failures answer 401, matching the rest of the API.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != models.RoleManager {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "manager_required"})
			return
		}
		c.Next()
	}
}

// IsManager reports whether the authenticated principal has the manager role.
func IsManager(c *gin.Context) bool {
	role, _ := c.Get(ContextUserRole)
	return role == models.RoleManager
}
