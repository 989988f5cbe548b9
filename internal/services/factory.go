package services

import (
	"fmt"

	"github.com/TSJean45/owewow/internal/adapters/invoker"
	"github.com/TSJean45/owewow/internal/config"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	ReceiptService ReceiptService
	ProxyService   ProxyService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(inv invoker.Invoker, cfg *config.Config) (*ServiceContainer, error) {
	if inv == nil {
		return nil, fmt.Errorf("invoker cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	receiptService := NewReceiptService(inv, ReceiptConfig{
		FunctionName:     cfg.Parser.FunctionName,
		BucketName:       cfg.Parser.BucketName,
		DefaultObjectKey: cfg.Parser.DefaultObjectKey,
		DefaultGroupID:   cfg.Parser.DefaultGroupID,
	})

	proxyService := NewProxyService(inv, ProxyConfig{
		ChatFunctionName:   cfg.Proxy.ChatFunctionName,
		ParserFunctionName: cfg.Parser.FunctionName,
		DefaultBucket:      cfg.Parser.BucketName,
		DefaultGroupID:     cfg.Proxy.DefaultGroupID,
		DefaultStep:        cfg.Proxy.DefaultStep,
	})

	return &ServiceContainer{
		ReceiptService: receiptService,
		ProxyService:   proxyService,
	}, nil
}
