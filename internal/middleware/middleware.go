package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS middleware allows any origin. Allow-Headers and Allow-Methods are
// only set on preflight; other responses carry the headers their handler
// returns.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Headers", "*")
			c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
