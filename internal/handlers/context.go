package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boxfit/gym-scheduler/internal/middleware"
)

// currentActor pulls the authenticated user out of the gin context. It aborts
// with 401 when the auth middleware did not run; callers just return on !ok.
func currentActor(c *gin.Context) (uint, string, bool) {
	idVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return 0, "", false
	}

	id, ok := idVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return 0, "", false
	}

	role, _ := c.Get(middleware.ContextUserRole)
	roleStr, _ := role.(string)

	return id, roleStr, true
}
