package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/jxsus-1/api-supermarket/controllers/product"
	"github.com/jxsus-1/api-supermarket/middleware"
)

// SetupProductRoutes registers the product CRUD endpoints. Reads are public;
// writes are gated by the configured catalog-write role.
func SetupProductRoutes(r *gin.Engine, d Deps) {
	gate := middleware.RequireRole(d.Issuer, d.Policy.CatalogWrite)

	r.GET("/products", productcontroller.ListProducts(d.Products, d.Log))
	r.GET("/products/:id", productcontroller.GetProductByID(d.Products, d.Log))

	r.POST("/products", gate, productcontroller.CreateProduct(d.Products, d.Categories, d.Log))
	r.PUT("/products/:id", gate, productcontroller.UpdateProduct(d.Products, d.Categories, d.Log))
	r.DELETE("/products/:id", gate, productcontroller.DeleteProduct(d.Products, d.Log))
}
