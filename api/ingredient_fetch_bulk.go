package api

import (
	"net/http"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) IngredientFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	q := a.DB.
		Model(model.Ingredient{}).
		Where("ingredients.user_id = ?", userID)

	if parseBoolFlag(c.DefaultQuery("assigned_only", "0")) {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id")
	}

	entries := []model.Ingredient{}

	err := q.
		Distinct("ingredients.id, ingredients.name").
		Order("ingredients.name desc").
		Find(&entries).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch ingredients", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, entries)
}
