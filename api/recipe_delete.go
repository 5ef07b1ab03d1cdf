package api

import (
	"errors"
	"net/http"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (a *API) RecipeDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipeID := c.Param("id")

	var recipe model.Recipe

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, recipeID).
		First(&recipe).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Recipe not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Selecting the associations removes the join table rows together
	// with the recipe. The tags and ingredients themselves stay
	err = a.DB.
		Select(clause.Associations).
		Delete(&recipe).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if recipe.ImageKey != "" {
		if err := a.Storage.Delete(c.Request.Context(), recipe.ImageKey); err != nil {
			zap.L().Error("Failed to delete recipe image", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.Status(http.StatusNoContent)
}
