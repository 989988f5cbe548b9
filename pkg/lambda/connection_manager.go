package lambda

import (
	"context"
	"sync"
	"time"

	"github.com/TSJean45/owewow/internal/config"
	"github.com/TSJean45/owewow/pkg/server"
)

// ConnectionManager keeps the service container alive across warm Lambda
// invocations so the AWS client is built once per execution environment
type ConnectionManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager around an already built container
func NewConnectionManager(container *server.Container) *ConnectionManager {
	cm := &ConnectionManager{
		container:   container,
		config:      container.Config,
		lastUsed:    time.Now(),
		initialized: true,
	}
	return cm
}

// Initialize builds the container once. A failed attempt is not cached, so
// the next call retries with the same configuration.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized {
		return nil
	}

	cm.config = cfg
	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}

	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cfg := cm.config
	cm.mu.Unlock()

	if cfg == nil {
		var err error
		cfg, err = config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
	}
	if err := cm.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy checks if the connection manager holds a recently used container
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}

	// Stale after 5 minutes without an invocation
	return time.Since(cm.lastUsed) < 5*time.Minute
}
