package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// FormatNode returns a state node that restructures the draft into standard
// business letter layout. The node rewrites presentation only: after the
// inference it verifies that the policy and claim numbers present in the
// draft still appear in the formatted text, and fails the run if either was
// dropped.
func FormatNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		fields, err := extractFields(s)
		if err != nil {
			return s, fmt.Errorf("format: %w: %w", ErrFormatFailed, err)
		}

		draft, err := extractLetter(s)
		if err != nil {
			return s, fmt.Errorf("format: %w: %w", ErrFormatFailed, err)
		}

		formatted, err := formatLetter(ctx, rt, fields, draft)
		if err != nil {
			return s, fmt.Errorf("format: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "format node complete",
			"letter_type", fields.LetterType,
			"length", len(formatted),
		)

		s = s.Set(KeyLetter, formatted)
		return appendTrace(s, instructions.StageFormat), nil
	})
}

func formatLetter(ctx context.Context, rt *Runtime, fields LetterFields, draft string) (string, error) {
	a, err := agent.New(&rt.Agent)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrFormatFailed, err)
	}

	prompt, err := ComposePrompt(ctx, rt.Instructions, instructions.StageFormat,
		Section{Title: "Draft letter to format:", Body: draft},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormatFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrFormatFailed, err)
	}

	formatted := strings.TrimSpace(resp.Content())
	if formatted == "" {
		return "", fmt.Errorf("%w: %w", ErrFormatFailed, ErrEmptyOutput)
	}

	if err := VerifyIdentifiers(draft, formatted, fields); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormatFailed, err)
	}

	return formatted, nil
}
