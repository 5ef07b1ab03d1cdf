package api

import (
	"net/http"
	"strings"

	"github.com/rshzvr/recipe-app-api/model"
	"github.com/rshzvr/recipe-app-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pointer fields so an omitted key can be told apart from an empty value
type userEditOpts struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (a *API) UserEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data userEditOpts
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User

	err := a.DB.
		Where("id = ?", userID).
		First(&user).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name != nil {
		if strings.TrimSpace(*data.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Name field can't be empty",
				"requestID": requestID,
			})
			return
		}

		user.Name = *data.Name
	}

	if data.Password != nil {
		if err := validators.PasswordValidator(*data.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		hash, err := a.Argon.GenerateFromPassword(*data.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user.PasswordHash = hash
	}

	err = a.DB.
		Save(&user).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": user.Email,
		"name":  user.Name,
	})
}
