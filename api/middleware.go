package api

import (
	"net/http"
	"strings"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// Authenticate validates the Bearer token and stores the caller's identity
// in the gin context.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxRole, domain.Role(claims.Role))
		c.Next()
	}
}

// Require rejects callers whose role does not hold the capability.
func Require(action auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := callerRole(c)
		if !ok || !auth.Allow(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func callerRole(c *gin.Context) (domain.Role, bool) {
	v, ok := c.Get(ctxRole)
	if !ok {
		return "", false
	}
	role, ok := v.(domain.Role)
	return role, ok
}
