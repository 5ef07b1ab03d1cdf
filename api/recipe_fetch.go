package api

import (
	"errors"
	"net/http"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) RecipeFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipe, err := a.loadRecipe(userID, c.Param("id"))
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

	c.JSON(http.StatusOK, recipe)
}

// loadRecipe fetches one of the user's recipes with its associations in
// the detail shape. The user scoping makes other users' IDs look absent,
// which is why cross-user reads come back as 404 and not 403
func (a *API) loadRecipe(userID string, recipeID any) (*model.Recipe, error) {
	var recipe model.Recipe

	err := a.DB.
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("name desc")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("name desc")
		}).
		Where("user_id = ? AND id = ?", userID, recipeID).
		First(&recipe).
		Error
	if err != nil {
		return nil, err
	}

	if recipe.ImageKey != "" {
		recipe.ImageURL = a.Storage.URL(recipe.ImageKey)
	}

	// Associations marshal as [] instead of null when nothing is linked
	if recipe.Tags == nil {
		recipe.Tags = []model.Tag{}
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []model.Ingredient{}
	}

	return &recipe, nil
}
