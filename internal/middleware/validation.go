package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrorResponse is returned when middleware rejects a request
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

func reject(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	})
	c.Abort()
}

// RateLimiter implements rate limiting middleware
func RateLimiter(requestsPerSecond float64, burstSize int) gin.HandlerFunc {
	if burstSize < 1 {
		burstSize = 1
	}
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logrus.WithFields(logrus.Fields{
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
			}).Warn("Rate limit exceeded")

			reject(c, http.StatusTooManyRequests,
				fmt.Sprintf("Too many requests. Limit: %.1f requests per second", requestsPerSecond))
			return
		}
		c.Next()
	}
}

// RequestSizeLimit limits the size of request bodies
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			reject(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body size (%d bytes) exceeds maximum allowed size (%d bytes)", c.Request.ContentLength, maxSize))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
