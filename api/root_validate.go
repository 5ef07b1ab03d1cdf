package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Validate lets clients probe whether their stored token still works. The
// auth middleware does the actual check, this handler only reports when
// the token runs out so clients know to log in again
func (a *API) Validate(c *gin.Context) {
	if exp, ok := c.Get("tokenExpiry"); ok {
		c.Header("X-Token-Expires", strconv.FormatInt(exp.(int64), 10))
	}

	c.Status(http.StatusOK)
}
