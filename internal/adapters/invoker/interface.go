package invoker

import (
	"context"
)

// Invoker provides an abstraction over synchronous function invocation.
// Implementations block until the target function has completed.
type Invoker interface {
	// Invoke calls the named function with a JSON payload and returns the
	// raw JSON reply. A function-reported failure is returned as an error.
	Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error)
}

// Config represents configuration for invoker implementations
type Config struct {
	Type string `json:"type" yaml:"type"` // "aws" or "mock"
	AWS  ClientOptions
}

// ClientOptions configures the AWS Lambda client
type ClientOptions struct {
	Region          string `json:"region" yaml:"region"`
	EndpointURL     string `json:"endpoint_url" yaml:"endpoint_url"` // LocalStack or other emulator
	AccessKeyID     string `json:"-" yaml:"-"`
	SecretAccessKey string `json:"-" yaml:"-"`
	SessionToken    string `json:"-" yaml:"-"`
}
