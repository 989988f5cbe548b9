package invoker

import (
	"context"
	"fmt"
	"strings"
)

// InvokerType represents the type of invoker implementation
type InvokerType string

const (
	InvokerTypeAWS  InvokerType = "aws"
	InvokerTypeMock InvokerType = "mock"
)

// Create creates an Invoker based on the provided configuration
func Create(ctx context.Context, config *Config) (Invoker, error) {
	if config == nil {
		return nil, fmt.Errorf("invoker config is required")
	}

	switch InvokerType(strings.ToLower(config.Type)) {
	case InvokerTypeAWS, "":
		client, err := NewLambdaClient(ctx, config.AWS)
		if err != nil {
			return nil, fmt.Errorf("failed to create aws invoker: %w", err)
		}
		return NewLambdaInvoker(client), nil
	case InvokerTypeMock:
		return NewMockInvoker(), nil
	default:
		return nil, fmt.Errorf("unsupported invoker type: %s", config.Type)
	}
}
