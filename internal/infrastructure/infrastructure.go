// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, lifecycle, canonical instructions) that
// domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Adhya2325/letter-generation/internal/config"
	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, and the canonical instruction system.
type Infrastructure struct {
	Lifecycle    *lifecycle.Coordinator
	Logger       *slog.Logger
	Instructions instructions.System
}

// New creates an Infrastructure from the application configuration. A
// canonical instruction load failure is fatal: the service cannot produce
// letters without the canonical document, so startup aborts.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	inst, err := instructions.New(&cfg.Instructions, logger)
	if err != nil {
		return nil, fmt.Errorf("instructions init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:    lc,
		Logger:       logger,
		Instructions: inst,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
// The instruction system loads synchronously during New, so the only hook
// here marks the coordinator ready.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		i.Logger.Info("infrastructure ready")
	})
	return nil
}
