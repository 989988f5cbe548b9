package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/TSJean45/owewow/internal/adapters/invoker"
	"github.com/TSJean45/owewow/internal/models"
)

// ErrMissingParameters is returned when a proxy request selects no route.
// The message is part of the public error body.
var ErrMissingParameters = errors.New("Missing required parameters: need either chat_input or object_key")

// ProxyConfig holds the proxy targets and request defaults
type ProxyConfig struct {
	ChatFunctionName   string
	ParserFunctionName string
	DefaultBucket      string
	DefaultGroupID     string
	DefaultStep        string
}

// proxyService implements the ProxyService interface
type proxyService struct {
	invoker   invoker.Invoker
	config    ProxyConfig
	validator *validator.Validate
}

// NewProxyService creates a new proxy service instance
func NewProxyService(inv invoker.Invoker, config ProxyConfig) ProxyService {
	return &proxyService{
		invoker:   inv,
		config:    config,
		validator: validator.New(),
	}
}

// Route sends chat requests to the conversational function and uploads to
// the parser. Chat input takes precedence when both are present.
func (s *proxyService) Route(ctx context.Context, req *models.ProxyRequest) (*ProxyResult, error) {
	if req == nil {
		return nil, ErrMissingParameters
	}

	var (
		route, function string
		payload         interface{}
	)

	switch {
	case req.IsChat():
		route, function = RouteChat, s.config.ChatFunctionName
		payload = req.ToChatPayload(s.config.DefaultGroupID, s.config.DefaultStep)
	case req.IsUpload():
		route, function = RouteUpload, s.config.ParserFunctionName
		payload = req.ToParserPayload(s.config.DefaultBucket, s.config.DefaultGroupID)
	default:
		return nil, ErrMissingParameters
	}

	if err := s.validator.Struct(payload); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", route, err)
	}

	reply, err := s.invoker.Invoke(ctx, function, body)
	if err != nil {
		return nil, err
	}

	return &ProxyResult{
		Route:        route,
		FunctionName: function,
		Payload:      reply,
	}, nil
}
