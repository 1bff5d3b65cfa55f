package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/workflow"
)

// unreachableRuntime builds a runtime whose provider endpoint refuses
// connections, so the first inference call fails immediately.
func unreachableRuntime(t *testing.T) *workflow.Runtime {
	t.Helper()

	agentCfg := gaconfig.DefaultAgentConfig()
	agentCfg.Provider.BaseURL = "http://127.0.0.1:1"

	return &workflow.Runtime{
		Agent:        agentCfg,
		Instructions: newInstructionSystem(t),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExecuteUnreachableProvider(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rt := unreachableRuntime(t)

	result, err := workflow.Execute(ctx, rt, testFields())
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if err == nil {
		t.Fatal("expected error for unreachable provider")
	}

	if !errors.Is(err, workflow.ErrDraftFailed) {
		t.Errorf("error = %v, want ErrDraftFailed", err)
	}
	if errors.Is(err, workflow.ErrFormatFailed) {
		t.Error("formatting should never run when drafting fails")
	}
	if errors.Is(err, workflow.ErrComplianceFailed) {
		t.Error("compliance should never run when drafting fails")
	}
}

func TestExecuteUnknownLetterType(t *testing.T) {
	rt := unreachableRuntime(t)

	fields := testFields()
	fields.LetterType = "subrogation"

	result, err := workflow.Execute(context.Background(), rt, fields)
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if !errors.Is(err, instructions.ErrInstructionNotFound) {
		t.Errorf("error = %v, want ErrInstructionNotFound", err)
	}
	if errors.Is(err, workflow.ErrDraftFailed) {
		t.Error("no stage should run without a canonical excerpt")
	}
}
