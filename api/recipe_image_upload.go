package api

import (
	"errors"
	"net/http"

	"github.com/rshzvr/recipe-app-api/model"
	"github.com/rshzvr/recipe-app-api/util"
	"github.com/rshzvr/recipe-app-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) RecipeImageUpload(c *gin.Context) {
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

	fh, err := c.FormFile("image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No image provided",
			"requestID": requestID,
		})
		return
	}

	code, f, mime, err := validators.ImageValidator(fh)
	if err != nil {
		if code == http.StatusInternalServerError {
			zap.L().Error("Failed to validate image", zap.Error(err), zap.String("requestID", requestID))

			// That's to set the error into a general one for the users
			err = errors.New("internal server error")
		}

		c.AbortWithStatusJSON(code, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	key := util.RandStr(10) + mime.Extension()

	err = a.Storage.Put(c.Request.Context(), key, f, fh.Size, mime.String())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	oldKey := recipe.ImageKey

	err = a.DB.
		Model(&recipe).
		Update("image_key", key).
		Error
	if err != nil {
		// Don't leave the fresh object orphaned if the row update failed
		if derr := a.Storage.Delete(c.Request.Context(), key); derr != nil {
			zap.L().Error("Failed to clean up image after db error", zap.Error(derr), zap.String("requestID", requestID))
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update recipe image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if oldKey != "" {
		if err := a.Storage.Delete(c.Request.Context(), oldKey); err != nil {
			zap.L().Error("Failed to delete replaced image", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        recipe.ID,
		"image_url": a.Storage.URL(key),
	})
}
