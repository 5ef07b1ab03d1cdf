package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rshzvr/recipe-app-api/internal/service"
	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Every field is a pointer: nil means the key was omitted and the stored
// value stays. For tags/ingredients an empty (non-nil) list clears the
// association set
type recipeEditOpts struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link"`
	Tags        *[]namedRef      `json:"tags"`
	Ingredients *[]namedRef      `json:"ingredients"`
}

func (a *API) RecipeEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipeID := c.Param("id")

	var data recipeEditOpts
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var recipe model.Recipe

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, recipeID).
		First(&recipe).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Recipe not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title != nil {
		if strings.TrimSpace(*data.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Title can't be empty",
				"requestID": requestID,
			})
			return
		}

		recipe.Title = *data.Title
	}

	if data.TimeMinutes != nil {
		if *data.TimeMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Time can't be negative",
				"requestID": requestID,
			})
			return
		}

		recipe.TimeMinutes = *data.TimeMinutes
	}

	if data.Price != nil {
		if data.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Price can't be negative",
				"requestID": requestID,
			})
			return
		}

		recipe.Price = *data.Price
	}

	if data.Description != nil {
		recipe.Description = *data.Description
	}

	if data.Link != nil {
		recipe.Link = *data.Link
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&recipe).Error; err != nil {
			return err
		}

		if data.Tags != nil {
			tags, err := service.ResolveTags(tx, userID, names(*data.Tags))
			if err != nil {
				return err
			}

			if err := replaceAssociation(tx.Model(&recipe).Association("Tags"), tags); err != nil {
				return err
			}
		}

		if data.Ingredients != nil {
			ingredients, err := service.ResolveIngredients(tx, userID, names(*data.Ingredients))
			if err != nil {
				return err
			}

			if err := replaceAssociation(tx.Model(&recipe).Association("Ingredients"), ingredients); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, service.ErrBlankName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updated, err := a.loadRecipe(userID, recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load updated recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, updated)
}
