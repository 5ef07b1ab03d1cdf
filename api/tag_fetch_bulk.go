package api

import (
	"net/http"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) TagFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	q := a.DB.
		Model(model.Tag{}).
		Where("tags.user_id = ?", userID)

	// assigned_only=1 keeps tags that are on at least one recipe. The
	// DISTINCT collapses tags sitting on several recipes to one row
	if parseBoolFlag(c.DefaultQuery("assigned_only", "0")) {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id")
	}

	entries := []model.Tag{}

	err := q.
		Distinct("tags.id, tags.name").
		Order("tags.name desc").
		Find(&entries).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch tags", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, entries)
}
