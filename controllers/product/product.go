package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jxsus-1/api-supermarket/httperr"
	"github.com/jxsus-1/api-supermarket/models"
	"github.com/jxsus-1/api-supermarket/storage"
)

// validateProduct enforces the business rules shared by create and update:
// the price must be strictly positive and the referenced category must exist.
// Both run before any product write.
func validateProduct(c *gin.Context, categories storage.CategoryStore, product *models.Product, log *zap.Logger) bool {
	if product.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El precio debe ser mayor que cero."})
		return false
	}

	exists, err := categories.CategoryExists(c.Request.Context(), product.CategoryID)
	if err != nil {
		httperr.Respond(c, log, err)
		return false
	}
	if !exists {
		httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "La categoría no existe.", nil))
		return false
	}
	return true
}

// CreateProduct handles POST /products.
func CreateProduct(products storage.ProductStore, categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product.ID = primitive.NilObjectID
		product.ApplyDefaults()

		if !validateProduct(c, categories, &product, log) {
			return
		}

		if err := products.InsertProduct(c.Request.Context(), &product); err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetProductByID handles GET /products/:id.
func GetProductByID(products storage.ProductStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.GetProduct(c.Request.Context(), c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Producto no encontrado.", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// ListProducts handles GET /products.
func ListProducts(products storage.ProductStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.ListProducts(c.Request.Context())
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateProduct handles PUT /products/:id and returns the re-read document.
func UpdateProduct(products storage.ProductStore, categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product.ApplyDefaults()

		if !validateProduct(c, categories, &product, log) {
			return
		}

		updated, err := products.UpdateProduct(c.Request.Context(), c.Param("id"), &product)
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Producto no encontrado.", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteProduct handles DELETE /products/:id.
func DeleteProduct(products storage.ProductStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := products.DeleteProduct(c.Request.Context(), id)
		if errors.Is(err, storage.ErrInvalidID) {
			httperr.Respond(c, log, httperr.New(httperr.ErrValidation, "ID de producto no válido.", err))
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Producto no encontrado.", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado con éxito.", "id": id})
	}
}
