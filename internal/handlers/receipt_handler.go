package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TSJean45/owewow/internal/models"
	"github.com/TSJean45/owewow/internal/services"
	"github.com/TSJean45/owewow/pkg/lambda"
)

// ReceiptHandler forwards receipt processing requests to the parser and
// wraps the result in a success or error envelope
type ReceiptHandler struct {
	receiptService services.ReceiptService
	logger         logrus.FieldLogger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logrus.StandardLogger(),
	}
}

// WithLogger replaces the logger used for failures
func (h *ReceiptHandler) WithLogger(logger logrus.FieldLogger) *ReceiptHandler {
	h.logger = loggerOrDefault(logger)
	return h
}

// Handle processes a single receipt request. It never returns an error:
// every failure becomes a 500 response.
func (h *ReceiptHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	var body string
	if req != nil {
		body = string(req.Body)
	}

	result, err := h.process(ctx, body)
	if err != nil {
		return receiptFailure(h.logger, req, err)
	}

	return jsonResponse(200, successHeaders(), models.NewSuccessEnvelope(result))
}

// InitFailureResponse reports a failure that happened before a handler
// could be built, in the receipt envelope
func InitFailureResponse(req *lambda.Request, err error) *lambda.Response {
	return receiptFailure(logrus.StandardLogger(), req, err)
}

func receiptFailure(logger logrus.FieldLogger, req *lambda.Request, err error) *lambda.Response {
	entry := logger.WithField("error", err.Error())
	if req != nil && req.RequestID != "" {
		entry = entry.WithField("request_id", req.RequestID)
	}
	entry.Errorf("Error: %s", err)

	return jsonResponse(500, errorHeaders(), models.NewErrorEnvelope(err))
}

func (h *ReceiptHandler) process(ctx context.Context, body string) ([]byte, error) {
	receiptReq, err := models.ParseReceiptRequest(body)
	if err != nil {
		return nil, err
	}

	return h.receiptService.ProcessReceipt(ctx, receiptReq)
}

// ProcessReceipt is the gin route for the receipt processor
// @Summary Process a receipt
// @Description Invoke the textract parser for an uploaded receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body object false "object_key and group_id"
// @Success 200 {object} models.SuccessEnvelope
// @Failure 500 {object} models.ErrorEnvelope
// @Router /receipts/process [post]
func (h *ReceiptHandler) ProcessReceipt(c *gin.Context) {
	req, err := requestFromGin(c)
	if err != nil {
		writeResponse(c, receiptFailure(h.logger, nil, err))
		return
	}

	writeResponse(c, h.Handle(c.Request.Context(), req))
}
