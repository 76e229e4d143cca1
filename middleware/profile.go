package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diyahomestylist/poppyandteal/config"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/utils"
)

// ProfileKey is the gin context key holding the browser profile id.
const ProfileKey = "profile_id"

// ProfileMiddleware identifies the browser by a signed cookie and issues a new profile
// when the cookie is missing, expired or forged.
func ProfileMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cfg.ProfileCookie); err == nil {
			if id, err := utils.ParseProfileToken(raw, cfg.ProfileSecret); err == nil {
				c.Set(ProfileKey, id)
				c.Next()
				return
			}
		}

		id := uuid.NewString()
		token, err := utils.GenerateProfileToken(id, cfg.ProfileSecret, cfg.ProfileTTL)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to create profile",
				Error:   err.Error(),
			})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.ProfileCookie, token, int(cfg.ProfileTTL.Seconds()), "/", "", cfg.IsProduction(), true)
		c.Set(ProfileKey, id)
		c.Next()
	}
}

func ProfileID(c *gin.Context) string {
	return c.GetString(ProfileKey)
}
