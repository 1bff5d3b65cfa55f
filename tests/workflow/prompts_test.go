package workflow_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/workflow"
)

func newInstructionSystem(t *testing.T) instructions.System {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys, err := instructions.New(&instructions.Config{}, logger)
	if err != nil {
		t.Fatalf("instructions.New error: %v", err)
	}
	return sys
}

func testFields() workflow.LetterFields {
	return workflow.LetterFields{
		LetterType:   instructions.TypeDenial,
		CompanyName:  "Acme Mutual",
		InsuredName:  "Jordan Blake",
		PolicyNumber: "POL-88421",
		ClaimNumber:  "CLM-10339",
		DeadlineDays: 30,
	}
}

func TestComposePrompt(t *testing.T) {
	sys := newInstructionSystem(t)
	ctx := context.Background()

	t.Run("includes instructions and spec", func(t *testing.T) {
		prompt, err := workflow.ComposePrompt(ctx, sys, instructions.StageDraft)
		if err != nil {
			t.Fatalf("ComposePrompt error: %v", err)
		}

		text, _ := sys.Instructions(ctx, instructions.StageDraft)
		spec, _ := sys.Spec(ctx, instructions.StageDraft)

		if !strings.Contains(prompt, text) {
			t.Error("prompt missing stage instructions")
		}
		if !strings.Contains(prompt, spec) {
			t.Error("prompt missing stage spec")
		}
	})

	t.Run("appends sections in order", func(t *testing.T) {
		prompt, err := workflow.ComposePrompt(ctx, sys, instructions.StageFormat,
			workflow.Section{Title: "First:", Body: "alpha"},
			workflow.Section{Title: "Second:", Body: "beta"},
		)
		if err != nil {
			t.Fatalf("ComposePrompt error: %v", err)
		}

		first := strings.Index(prompt, "alpha")
		second := strings.Index(prompt, "beta")
		if first == -1 || second == -1 {
			t.Fatal("prompt missing section bodies")
		}
		if first > second {
			t.Error("sections out of order")
		}
	})

	t.Run("skips empty sections", func(t *testing.T) {
		prompt, err := workflow.ComposePrompt(ctx, sys, instructions.StageFormat,
			workflow.Section{Title: "Empty section title:", Body: ""},
		)
		if err != nil {
			t.Fatalf("ComposePrompt error: %v", err)
		}

		if strings.Contains(prompt, "Empty section title:") {
			t.Error("empty section should be skipped")
		}
	})

	t.Run("unknown stage fails", func(t *testing.T) {
		if _, err := workflow.ComposePrompt(ctx, sys, "review"); err == nil {
			t.Error("expected error for unknown stage")
		}
	})
}

func TestFieldsSection(t *testing.T) {
	section, err := workflow.FieldsSection(testFields())
	if err != nil {
		t.Fatalf("FieldsSection error: %v", err)
	}

	if section.Title == "" {
		t.Error("missing section title")
	}
	for _, want := range []string{"Acme Mutual", "Jordan Blake", "POL-88421", "CLM-10339"} {
		if !strings.Contains(section.Body, want) {
			t.Errorf("section body missing %q", want)
		}
	}
}

func TestNoticesSection(t *testing.T) {
	phrases := []string{
		"You have the right to appeal this decision.",
		"This denial is based solely on the policy provisions cited above.",
	}

	section := workflow.NoticesSection(phrases)

	for _, phrase := range phrases {
		if !strings.Contains(section.Body, phrase) {
			t.Errorf("section body missing %q", phrase)
		}
	}
	if !strings.HasPrefix(section.Body, "- ") {
		t.Errorf("section body should be a bulleted list: %q", section.Body)
	}
}
