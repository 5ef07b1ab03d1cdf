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

func (a *API) IngredientDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	ingredientID := c.Param("id")

	var ingredient model.Ingredient

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, ingredientID).
		First(&ingredient).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Ingredient not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch ingredient", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.
		Select(clause.Associations).
		Delete(&ingredient).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete ingredient", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
