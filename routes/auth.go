package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usercontroller "github.com/jxsus-1/api-supermarket/controllers/user"
	"github.com/jxsus-1/api-supermarket/middleware"
)

// SetupAuthRoutes registers registration, login, and the two gated example
// endpoints that demonstrate the role middleware.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	r.POST("/users", usercontroller.RegisterUser(d.Users, d.Accounts, d.Log))
	r.POST("/login", usercontroller.Login(d.Users, d.Verifier, d.Issuer, d.Log))

	r.GET("/exampleadmin", middleware.RequireRole(d.Issuer, middleware.RoleAdmin), func(c *gin.Context) {
		claims, _ := middleware.ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"message": "This is an example admin endpoint.",
			"admin":   claims.Admin,
		})
	})

	r.GET("/exampleuser", middleware.RequireRole(d.Issuer, middleware.RoleUser), func(c *gin.Context) {
		claims, _ := middleware.ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"message": "This is an example user endpoint.",
			"email":   claims.Email,
		})
	})
}
