package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store request ID in context
const RequestIDKey = "request_id"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger logs one line per request with its request ID
func StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		fields := logrus.Fields{
			"request_id":     c.GetString(RequestIDKey),
			"method":         c.Request.Method,
			"path":           path,
			"status_code":    c.Writer.Status(),
			"latency_ms":     float64(latency.Nanoseconds()) / 1000000,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
			"content_length": c.Request.ContentLength,
			"response_size":  c.Writer.Size(),
		}

		if raw := c.Request.URL.RawQuery; raw != "" {
			fields["query"] = raw
		}

		switch {
		case c.Writer.Status() >= 500:
			logrus.WithFields(fields).Error("Server error")
		case c.Writer.Status() >= 400:
			logrus.WithFields(fields).Warn("Client error")
		default:
			logrus.WithFields(fields).Info("Request completed")
		}
	}
}

// ErrorTracker logs errors attached to the gin context
func ErrorTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			logrus.WithFields(logrus.Fields{
				"error_tracking": true,
				"request_id":     c.GetString(RequestIDKey),
				"method":         c.Request.Method,
				"path":           c.Request.URL.Path,
				"error_type":     fmt.Sprintf("%d", err.Type),
				"error_message":  err.Error(),
				"status_code":    c.Writer.Status(),
			}).Error("Error tracked")
		}
	}
}
