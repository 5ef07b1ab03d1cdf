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

type tagEditOpts struct {
	Name string `json:"name"`
}

func (a *API) TagEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	tagID := c.Param("id")

	var data tagEditOpts
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

	var tag model.Tag

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, tagID).
		First(&tag).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Tag not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch tag", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	tag.Name = data.Name

	err = a.DB.
		Save(&tag).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "You already have a tag with this name",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update tag", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, tag)
}
