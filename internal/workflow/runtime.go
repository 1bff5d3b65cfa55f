package workflow

import (
	"log/slog"

	"github.com/Adhya2325/letter-generation/internal/instructions"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Agent        gaconfig.AgentConfig
	Instructions instructions.System
	Logger       *slog.Logger
}
