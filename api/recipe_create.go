package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rshzvr/recipe-app-api/internal/service"
	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type namedRef struct {
	Name string `json:"name"`
}

type recipeCreateBody struct {
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Tags        []namedRef      `json:"tags"`
	Ingredients []namedRef      `json:"ingredients"`
}

func (a *API) RecipeCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data recipeCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Title can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.TimeMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Time can't be negative",
			"requestID": requestID,
		})
		return
	}

	if data.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Price can't be negative",
			"requestID": requestID,
		})
		return
	}

	recipe := model.Recipe{
		UserID:      userID,
		Title:       data.Title,
		TimeMinutes: data.TimeMinutes,
		Price:       data.Price,
		Description: data.Description,
		Link:        data.Link,
		CreatedAt:   time.Now().Unix(),
	}

	// The recipe row and its association writes land in one transaction
	// so a failed tag lookup can't leave a half-linked recipe behind
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}

		tags, err := service.ResolveTags(tx, userID, names(data.Tags))
		if err != nil {
			return err
		}

		if err := replaceAssociation(tx.Model(&recipe).Association("Tags"), tags); err != nil {
			return err
		}

		ingredients, err := service.ResolveIngredients(tx, userID, names(data.Ingredients))
		if err != nil {
			return err
		}

		return replaceAssociation(tx.Model(&recipe).Association("Ingredients"), ingredients)
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

		zap.L().Error("Failed to create recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	created, err := a.loadRecipe(userID, recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load created recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func names(refs []namedRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}

	return out
}

// replaceAssociation swaps the linked rows for exactly the resolved set.
// An empty set detaches every current row
func replaceAssociation[T any](assoc *gorm.Association, values []T) error {
	if len(values) == 0 {
		return assoc.Clear()
	}

	return assoc.Replace(values)
}
