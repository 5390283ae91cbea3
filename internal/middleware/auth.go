package middleware

import (
	"net/http"

	"github.com/careerportal/career-portal-backend/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	ctxUsername = "username"
	ctxRoles    = "roles"
)

// RequireAuth validates the Bearer token and attaches the principal to
// the request context. Missing, malformed and expired tokens are all
// rejected the same way.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := issuer.Parse(auth.ExtractBearer(header))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ctxUsername, claims.Subject)
		c.Set(ctxRoles, claims.RoleList())
		c.Next()
	}
}

// RequireRole gates a route group on a role claim set by RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, r := range Roles(c) {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// Username returns the authenticated principal's username, or "" on an
// unauthenticated request.
func Username(c *gin.Context) string {
	v, _ := c.Get(ctxUsername)
	s, _ := v.(string)
	return s
}

func Roles(c *gin.Context) []string {
	v, _ := c.Get(ctxRoles)
	rs, _ := v.([]string)
	return rs
}
