package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/pkg/formatting"
)

type complyResponse struct {
	Letter         string   `json:"letter"`
	NoticesApplied []string `json:"notices_applied"`
}

// ComplyNode returns a state node that performs the compliance review. The
// model receives the formatted letter together with the required notice
// phrases for the letter type and returns the reviewed letter plus the list
// of notices it applied. The model output is advisory: the node then
// deterministically verifies that every required phrase appears verbatim in
// the final text and that no identifier was dropped, failing the run
// otherwise.
func ComplyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		fields, err := extractFields(s)
		if err != nil {
			return s, fmt.Errorf("comply: %w: %w", ErrComplianceFailed, err)
		}

		formatted, err := extractLetter(s)
		if err != nil {
			return s, fmt.Errorf("comply: %w: %w", ErrComplianceFailed, err)
		}

		letter, applied, err := reviewLetter(ctx, rt, fields, formatted)
		if err != nil {
			return s, fmt.Errorf("comply: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "comply node complete",
			"letter_type", fields.LetterType,
			"notices_applied", len(applied),
		)

		s = s.Set(KeyLetter, letter)
		s = s.Set(KeyNotices, applied)
		return appendTrace(s, instructions.StageComply), nil
	})
}

func reviewLetter(ctx context.Context, rt *Runtime, fields LetterFields, formatted string) (string, []string, error) {
	required, err := rt.Instructions.Notices(ctx, fields.LetterType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrComplianceFailed, err)
	}

	a, err := agent.New(&rt.Agent)
	if err != nil {
		return "", nil, fmt.Errorf("%w: create agent: %w", ErrComplianceFailed, err)
	}

	fieldsSection, err := FieldsSection(fields)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrComplianceFailed, err)
	}

	prompt, err := ComposePrompt(ctx, rt.Instructions, instructions.StageComply,
		fieldsSection,
		NoticesSection(required),
		Section{Title: "Formatted letter to review:", Body: formatted},
	)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrComplianceFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("%w: chat call: %w", ErrComplianceFailed, err)
	}

	parsed, err := formatting.Parse[complyResponse](resp.Content())
	if err != nil {
		return "", nil, fmt.Errorf("%w: parse response: %w", ErrComplianceFailed, err)
	}

	letter := strings.TrimSpace(parsed.Letter)
	if letter == "" {
		return "", nil, fmt.Errorf("%w: %w", ErrComplianceFailed, ErrEmptyOutput)
	}

	if err := VerifyIdentifiers(formatted, letter, fields); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrComplianceFailed, err)
	}

	if err := VerifyNotices(letter, required); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrComplianceFailed, err)
	}

	return letter, parsed.NoticesApplied, nil
}
