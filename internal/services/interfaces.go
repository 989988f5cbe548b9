package services

import (
	"context"
	"encoding/json"

	"github.com/TSJean45/owewow/internal/models"
)

// ReceiptService forwards receipt processing requests to the textract parser
type ReceiptService interface {
	// ProcessReceipt invokes the parser synchronously and returns its decoded result
	ProcessReceipt(ctx context.Context, req *models.ReceiptRequest) (json.RawMessage, error)
}

// ProxyService routes proxy requests to the chat or upload function
type ProxyService interface {
	// Route invokes the function selected by the request and returns its raw reply
	Route(ctx context.Context, req *models.ProxyRequest) (*ProxyResult, error)
}

// Route names used in logs
const (
	RouteChat   = "chat"
	RouteUpload = "upload"
)

// ProxyResult is the outcome of a routed invocation
type ProxyResult struct {
	Route        string
	FunctionName string
	Payload      []byte
}
