package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/Adhya2325/letter-generation/internal/config"
	"github.com/Adhya2325/letter-generation/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent gaconfig.AgentConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle:    infra.Lifecycle,
			Logger:       infra.Logger.With("module", "api"),
			Instructions: infra.Instructions,
		},
		Agent: cfg.Agent,
	}
}
