package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

// AuthMiddleware requires a backend token stored for the profile. It must run after
// ProfileMiddleware.
func AuthMiddleware(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := ProfileID(c)
		if _, err := sessions.Token(c.Request.Context(), profileID); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Please log in to continue",
			})
			c.Abort()
			return
		}

		user, err := sessions.User(c.Request.Context(), profileID)
		if err == nil {
			c.Set("user_id", user.ID)
			c.Set("user_email", user.Email)
			c.Set("user_role", user.Role)
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
