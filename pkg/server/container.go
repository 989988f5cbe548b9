package server

import (
	"context"
	"fmt"

	"github.com/TSJean45/owewow/internal/adapters/invoker"
	"github.com/TSJean45/owewow/internal/config"
	"github.com/TSJean45/owewow/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Invoker        invoker.Invoker
	ReceiptService services.ReceiptService
	ProxyService   services.ProxyService
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	inv, err := invoker.Create(ctx, &invoker.Config{
		Type: cfg.Invoker.Type,
		AWS: invoker.ClientOptions{
			Region:          cfg.AWS.Region,
			EndpointURL:     cfg.AWS.EndpointURL,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			SessionToken:    cfg.AWS.SessionToken,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoker: %w", err)
	}

	return NewContainerWithInvoker(cfg, inv)
}

// NewContainerWithInvoker wires services around an existing invoker
func NewContainerWithInvoker(cfg *config.Config, inv invoker.Invoker) (*Container, error) {
	serviceContainer, err := services.NewServiceContainer(inv, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:         cfg,
		Invoker:        inv,
		ReceiptService: serviceContainer.ReceiptService,
		ProxyService:   serviceContainer.ProxyService,
	}, nil
}
