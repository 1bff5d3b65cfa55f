package infrastructure_test

import (
	"testing"

	"github.com/Adhya2325/letter-generation/internal/config"
	"github.com/Adhya2325/letter-generation/internal/infrastructure"
	"github.com/Adhya2325/letter-generation/internal/instructions"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("missing lifecycle coordinator")
	}
	if infra.Logger == nil {
		t.Error("missing logger")
	}
	if infra.Instructions == nil {
		t.Error("missing instruction system")
	}
}

func TestNewInstructionLoadFailure(t *testing.T) {
	cfg := &config.Config{
		Instructions: instructions.Config{
			Path: "/nonexistent/canonical.txt",
		},
	}

	if _, err := infrastructure.New(cfg); err == nil {
		t.Error("expected error for unreadable canonical document")
	}
}

func TestStart(t *testing.T) {
	infra, err := infrastructure.New(&config.Config{})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	infra.Lifecycle.WaitForStartup()

	if !infra.Lifecycle.Ready() {
		t.Error("lifecycle should be ready after startup hooks run")
	}
}
