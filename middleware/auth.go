// Package middleware contains any custom middleware used in the app
package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware resolves the Authorization header to a user and sets
// userID on the context. Both "Token <key>" and "Bearer <key>" schemes
// are accepted
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authentication credentials were not provided",
				"requestID": requestID,
			})
			return
		}

		scheme, key, found := strings.Cut(header, " ")
		if !found || (!strings.EqualFold(scheme, "token") && !strings.EqualFold(scheme, "bearer")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid authorization header",
				"requestID": requestID,
			})
			return
		}

		var token model.AuthToken

		err := d.Where("key = ?", strings.TrimSpace(key)).First(&token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid token",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if time.Now().Unix() >= token.ExpiresAt {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Token expired",
				"requestID": requestID,
			})
			return
		}

		// The owning account may have been deactivated after the token
		// was issued, so the user row decides, not the token
		var user model.User

		err = d.Where("id = ?", token.UserID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid token",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token owner", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "User account is disabled",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", user.ID)
		c.Set("tokenExpiry", token.ExpiresAt)
		c.Next()
	}
}
