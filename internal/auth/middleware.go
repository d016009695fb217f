package auth

import (
	"atlantic-api/internal/constants"
	"atlantic-api/internal/db"
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// validAdminAPIKey checks the header key against the configured admin key.
// An empty ADMIN_API_KEY disables key-based admin access entirely.
func validAdminAPIKey(apiKey string) bool {
	configured := os.Getenv("ADMIN_API_KEY")
	if configured == "" || apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(apiKey)) == 1
}

// RequireRoles restricts a route group to profiles holding one of the given
// roles. API key requests carry the admin key and bypass the profile lookup;
// JWT requests are resolved to a profile through the supabase_id set by the
// authentication middleware.
func RequireRoles(queries *db.Queries, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			if !validAdminAPIKey(apiKey) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Invalid API key"})
				c.Abort()
				return
			}
			c.Set("authType", constants.AuthTypeAPIKey)
			c.Next()
			return
		}

		supabaseID := c.GetString("supabase_id")
		if supabaseID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrNoAuthenticatedUser.Error()})
			c.Abort()
			return
		}

		profile, err := queries.GetProfileBySupabaseID(c.Request.Context(), supabaseID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Profile not found"})
			c.Abort()
			return
		}

		if !allowed[profile.Role] {
			c.JSON(http.StatusForbidden, gin.H{"error": ErrInsufficientRole.Error()})
			c.Abort()
			return
		}

		c.Set("authType", constants.AuthTypeJWT)
		c.Set("profile_role", profile.Role)
		c.Next()
	}
}
