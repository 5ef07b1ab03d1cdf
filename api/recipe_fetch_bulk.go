package api

import (
	"net/http"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Brief shape for listings. Description, tags, ingredients and the image
// only show up on single recipe reads
type briefRecipe struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
}

func (a *API) RecipeFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	q := a.DB.
		Model(model.Recipe{}).
		Where("recipes.user_id = ?", userID)

	if tagIDs := parseIDList(c.Query("tags")); tagIDs != nil {
		q = q.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}

	if ingredientIDs := parseIDList(c.Query("ingredients")); ingredientIDs != nil {
		q = q.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	// A recipe matching several filtered tags would show up once per
	// join hit without the DISTINCT
	entries := []briefRecipe{}

	err := q.
		Distinct("recipes.id, recipes.title, recipes.time_minutes, recipes.price, recipes.link").
		Order("recipes.id desc").
		Find(&entries).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch recipes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, entries)
}
