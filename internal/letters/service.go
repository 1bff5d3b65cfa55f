package letters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/workflow"
)

type service struct {
	rt     *workflow.Runtime
	logger *slog.Logger
}

// New creates a letter service implementing the System interface. It
// internally constructs the workflow runtime from the provided dependencies.
func New(
	agent gaconfig.AgentConfig,
	inst instructions.System,
	logger *slog.Logger,
) System {
	rt := &workflow.Runtime{
		Agent:        agent,
		Instructions: inst,
		Logger:       logger.With("workflow", "generate"),
	}
	return &service{
		rt:     rt,
		logger: logger.With("system", "letters"),
	}
}

func (s *service) Handler(maxBody int64) *Handler {
	return NewHandler(s, s.logger, maxBody)
}

// Generate validates the request, runs the generation pipeline, and wraps
// the result in a Letter. Requests run synchronously; the caller holds the
// connection open for the duration of the three inference calls.
func (s *service) Generate(ctx context.Context, req Request) (*Letter, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()

	result, err := workflow.Execute(ctx, s.rt, req.Fields())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	s.logger.InfoContext(
		ctx, "letter generated",
		"letter_type", req.LetterType,
		"claim_number", req.ClaimNumber,
		"duration", time.Since(started),
	)

	return &Letter{
		ID:             uuid.New(),
		LetterType:     req.LetterType,
		CompanyName:    req.CompanyName,
		InsuredName:    req.InsuredName,
		PolicyNumber:   req.PolicyNumber,
		ClaimNumber:    req.ClaimNumber,
		Content:        result.Content,
		NoticesApplied: result.NoticesApplied,
		GeneratedAt:    result.CompletedAt,
		ModelName:      s.rt.Agent.Model.Name,
		ProviderName:   s.rt.Agent.Provider.Name,
	}, nil
}

func (s *service) Types() []instructions.LetterType {
	return s.rt.Instructions.Types()
}
