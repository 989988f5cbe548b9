package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/TSJean45/owewow/internal/adapters/invoker"
	"github.com/TSJean45/owewow/internal/models"
)

// ReceiptConfig holds the parser target and request defaults
type ReceiptConfig struct {
	FunctionName     string
	BucketName       string
	DefaultObjectKey string
	DefaultGroupID   string
}

// receiptService implements the ReceiptService interface
type receiptService struct {
	invoker   invoker.Invoker
	config    ReceiptConfig
	validator *validator.Validate
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(inv invoker.Invoker, config ReceiptConfig) ReceiptService {
	return &receiptService{
		invoker:   inv,
		config:    config,
		validator: validator.New(),
	}
}

// ProcessReceipt builds the parser payload and invokes the parser once
func (s *receiptService) ProcessReceipt(ctx context.Context, req *models.ReceiptRequest) (json.RawMessage, error) {
	if req == nil {
		req = &models.ReceiptRequest{}
	}

	payload := req.ToParserPayload(s.config.BucketName, s.config.DefaultObjectKey, s.config.DefaultGroupID)
	if err := s.validator.Struct(payload); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parser payload: %w", err)
	}

	reply, err := s.invoker.Invoke(ctx, s.config.FunctionName, body)
	if err != nil {
		return nil, err
	}

	var result json.RawMessage
	if err := json.Unmarshal(reply, &result); err != nil {
		return nil, fmt.Errorf("failed to decode parser response: %w", err)
	}

	return result, nil
}
