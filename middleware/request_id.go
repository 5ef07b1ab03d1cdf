package middleware

import (
	"github.com/rshzvr/recipe-app-api/util"

	"github.com/gin-gonic/gin"
)

// NewRequestIDMiddleware tags every request with a short random ID. The ID
// rides along in the context for log correlation and goes back to the
// caller as X-Request-ID
func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := util.RandStr(10)

		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
