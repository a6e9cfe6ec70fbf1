package categorycontroller

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

// CreateCategory handles POST /categories.
func CreateCategory(categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category.ID = primitive.NilObjectID

		if err := categories.InsertCategory(c.Request.Context(), &category); err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GetCategoryByID handles GET /categories/:id.
func GetCategoryByID(categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.GetCategory(c.Request.Context(), c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Category not found", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// ListCategories handles GET /categories.
func ListCategories(categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.ListCategories(c.Request.Context())
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateCategory handles PUT /categories/:id and returns the re-read document.
func UpdateCategory(categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := categories.UpdateCategory(c.Request.Context(), c.Param("id"), &category)
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Category not found", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteCategory handles DELETE /categories/:id. Products referencing the
// category are left in place; the reference is weak and nothing cascades.
func DeleteCategory(categories storage.CategoryStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := categories.DeleteCategory(c.Request.Context(), c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Category not found", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
