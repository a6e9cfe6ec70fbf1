package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jxsus-1/api-supermarket/auth"
	"github.com/jxsus-1/api-supermarket/middleware"
	"github.com/jxsus-1/api-supermarket/storage"
)

// Policy is the auditable per-route role configuration. The source material
// gated the same mutating endpoints with admin in one revision and user in
// another, so the required role is explicit configuration rather than a
// hardcoded choice.
type Policy struct {
	// CatalogWrite gates POST/PUT/DELETE on categories and products.
	CatalogWrite middleware.Role
}

// DefaultPolicy requires admin for all catalog writes.
func DefaultPolicy() Policy {
	return Policy{CatalogWrite: middleware.RoleAdmin}
}

// Deps carries everything the handlers need; routes never reach for globals.
type Deps struct {
	Categories storage.CategoryStore
	Products   storage.ProductStore
	Users      storage.UserStore

	Accounts auth.AccountProvider
	Verifier *auth.Verifier
	Issuer   *auth.Issuer

	Policy Policy
	Log    *zap.Logger
}

// SetupRoutes is the single entry-point that wires up the version, auth,
// category and product route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": "0.0.0"})
	})

	SetupAuthRoutes(r, d)
	SetupCategoryRoutes(r, d)
	SetupProductRoutes(r, d)
}
