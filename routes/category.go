package routes

import (
	"github.com/gin-gonic/gin"

	categorycontroller "github.com/jxsus-1/api-supermarket/controllers/category"
	"github.com/jxsus-1/api-supermarket/middleware"
)

// SetupCategoryRoutes registers the category CRUD endpoints. Reads are public;
// writes are gated by the configured catalog-write role.
func SetupCategoryRoutes(r *gin.Engine, d Deps) {
	gate := middleware.RequireRole(d.Issuer, d.Policy.CatalogWrite)

	r.GET("/categories", categorycontroller.ListCategories(d.Categories, d.Log))
	r.GET("/categories/:id", categorycontroller.GetCategoryByID(d.Categories, d.Log))

	r.POST("/categories", gate, categorycontroller.CreateCategory(d.Categories, d.Log))
	r.PUT("/categories/:id", gate, categorycontroller.UpdateCategory(d.Categories, d.Log))
	r.DELETE("/categories/:id", gate, categorycontroller.DeleteCategory(d.Categories, d.Log))
}
