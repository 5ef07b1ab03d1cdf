package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ingredientEditOpts struct {
	Name string `json:"name"`
}

func (a *API) IngredientEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	ingredientID := c.Param("id")

	var data ingredientEditOpts
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	data.Name = strings.TrimSpace(data.Name)
	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No new name provided",
			"requestID": requestID,
		})
		return
	}

	var ingredient model.Ingredient

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, ingredientID).
		First(&ingredient).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Ingredient not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch ingredient", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ingredient.Name = data.Name

	err = a.DB.
		Save(&ingredient).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "You already have an ingredient with this name",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update ingredient", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, ingredient)
}
