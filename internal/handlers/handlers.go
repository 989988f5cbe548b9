package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TSJean45/owewow/internal/middleware"
	"github.com/TSJean45/owewow/pkg/lambda"
)

const contentTypeJSON = "application/json"

// fallbackErrorBody is used if an error envelope cannot be encoded
const fallbackErrorBody = `{"success":false,"error":"internal error"}`

// successHeaders are returned with every successful receipt response
func successHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "*",
		"Content-Type":                 contentTypeJSON,
	}
}

// errorHeaders are returned with every failed receipt response
func errorHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": "*",
		"Content-Type":                contentTypeJSON,
	}
}

// jsonResponse encodes v as the response body
func jsonResponse(status int, headers map[string]string, v interface{}) *lambda.Response {
	body, err := json.Marshal(v)
	if err != nil {
		return &lambda.Response{
			StatusCode: 500,
			Headers:    errorHeaders(),
			Body:       []byte(fallbackErrorBody),
		}
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

// writeResponse copies a serverless response onto a gin context
func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Status(resp.StatusCode)
	if _, err := c.Writer.Write(resp.Body); err != nil {
		_ = c.Error(err)
	}
}

// requestFromGin adapts a gin request to the serverless request shape
func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.GetHeader(key)
	}

	return &lambda.Request{
		RequestID: c.GetString(middleware.RequestIDKey),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Headers:   headers,
		Body:      body,
	}, nil
}

func loggerOrDefault(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}
