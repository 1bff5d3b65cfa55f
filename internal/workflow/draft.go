package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// DraftNode returns a state node that produces the initial letter draft. It
// composes a prompt from the drafting instructions, the canonical excerpt for
// the requested letter type, and the structured claim fields, then performs a
// single chat inference. The node writes the raw draft to state; formatting
// and compliance concerns belong to the downstream nodes.
func DraftNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		fields, err := extractFields(s)
		if err != nil {
			return s, fmt.Errorf("draft: %w: %w", ErrDraftFailed, err)
		}

		excerpt, err := extractExcerpt(s)
		if err != nil {
			return s, fmt.Errorf("draft: %w: %w", ErrDraftFailed, err)
		}

		draft, err := draftLetter(ctx, rt, fields, excerpt)
		if err != nil {
			return s, fmt.Errorf("draft: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "draft node complete",
			"letter_type", fields.LetterType,
			"length", len(draft),
		)

		s = s.Set(KeyLetter, draft)
		return appendTrace(s, instructions.StageDraft), nil
	})
}

func draftLetter(ctx context.Context, rt *Runtime, fields LetterFields, excerpt string) (string, error) {
	a, err := agent.New(&rt.Agent)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrDraftFailed, err)
	}

	fieldsSection, err := FieldsSection(fields)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDraftFailed, err)
	}

	prompt, err := ComposePrompt(ctx, rt.Instructions, instructions.StageDraft,
		Section{Title: "Canonical guidance for this letter type:", Body: excerpt},
		fieldsSection,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDraftFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrDraftFailed, err)
	}

	draft := strings.TrimSpace(resp.Content())
	if draft == "" {
		return "", fmt.Errorf("%w: %w", ErrDraftFailed, ErrEmptyOutput)
	}

	if err := VerifyIdentifiersPresent(draft, fields); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDraftFailed, err)
	}

	return draft, nil
}
