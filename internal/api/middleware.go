package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costumerental/costume-rental-backend/internal/auth"
	"github.com/costumerental/costume-rental-backend/internal/user"
)

// RequireAdmin ensures the authenticated user has the administrator role.
// It MUST be used after auth.AuthRequired middleware. The role is verified
// against the user record rather than trusting the token claim alone, so a
// demoted admin loses access as soon as the record changes.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
