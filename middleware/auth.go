package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jxsus-1/api-supermarket/auth"
)

// Role is the privilege level a route requires. RoleUser accepts any
// authenticated principal; RoleAdmin additionally requires the admin claim.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const claimsKey = "claims"

// ParseRole maps a configuration string to a Role, defaulting to admin so a
// typo can only tighten the policy, never loosen it.
func ParseRole(s string) Role {
	if strings.EqualFold(s, string(RoleUser)) {
		return RoleUser
	}
	return RoleAdmin
}

// RequireRole authenticates the request and checks the role before the
// wrapped handler runs. On rejection the handler is never invoked and no
// claims are set.
func RequireRole(issuer *auth.Issuer, role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if role == RoleAdmin && !claims.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims the gate stored for this request.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
