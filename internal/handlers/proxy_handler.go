package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TSJean45/owewow/internal/models"
	"github.com/TSJean45/owewow/internal/services"
	"github.com/TSJean45/owewow/pkg/lambda"
)

// ProxyHandler routes chat and upload requests to their downstream
// functions and returns the downstream reply unwrapped
type ProxyHandler struct {
	proxyService services.ProxyService
	logger       logrus.FieldLogger
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(proxyService services.ProxyService) *ProxyHandler {
	return &ProxyHandler{
		proxyService: proxyService,
		logger:       logrus.StandardLogger(),
	}
}

// WithLogger replaces the logger
func (h *ProxyHandler) WithLogger(logger logrus.FieldLogger) *ProxyHandler {
	h.logger = loggerOrDefault(logger)
	return h
}

func proxyHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
	}
}

func proxyErrorHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": "*",
	}
}

// Handle routes a single proxy request. Failures become a 500 response
// tagged with the proxy stage.
func (h *ProxyHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	fields := logrus.Fields{}
	var body string
	if req != nil {
		body = string(req.Body)
		if req.RequestID != "" {
			fields["request_id"] = req.RequestID
		}
	}

	result, err := h.route(ctx, body)
	if err != nil {
		return proxyFailure(h.logger, req, err)
	}

	h.logger.WithFields(fields).WithFields(logrus.Fields{
		"route":    result.Route,
		"function": result.FunctionName,
	}).Info("Routed proxy request")

	return &lambda.Response{
		StatusCode: 200,
		Headers:    proxyHeaders(),
		Body:       result.Payload,
	}
}

// ProxyInitFailureResponse reports a failure that happened before a handler
// could be built, in the proxy error shape
func ProxyInitFailureResponse(req *lambda.Request, err error) *lambda.Response {
	return proxyFailure(logrus.StandardLogger(), req, err)
}

func proxyFailure(logger logrus.FieldLogger, req *lambda.Request, err error) *lambda.Response {
	entry := logger.WithField("error", err.Error())
	if req != nil && req.RequestID != "" {
		entry = entry.WithField("request_id", req.RequestID)
	}
	entry.Errorf("Proxy error: %s", err)

	return jsonResponse(500, proxyErrorHeaders(), &models.ProxyError{
		Error: err.Error(),
		Stage: models.ProxyStage,
	})
}

func (h *ProxyHandler) route(ctx context.Context, body string) (*services.ProxyResult, error) {
	proxyReq, err := models.ParseProxyRequest(body)
	if err != nil {
		return nil, err
	}

	return h.proxyService.Route(ctx, proxyReq)
}

// Proxy is the gin route for the receipt proxy
// @Summary Route a receipt request
// @Description Send chat input to the conversational function or an object key to the parser
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body models.ProxyRequest true "Chat or upload request"
// @Success 200 {object} object "Downstream reply"
// @Failure 500 {object} models.ProxyError
// @Router /proxy [post]
func (h *ProxyHandler) Proxy(c *gin.Context) {
	req, err := requestFromGin(c)
	if err != nil {
		writeResponse(c, proxyFailure(h.logger, nil, err))
		return
	}

	writeResponse(c, h.Handle(c.Request.Context(), req))
}
