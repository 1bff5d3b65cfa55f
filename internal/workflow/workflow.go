package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// Execute runs the letter generation pipeline for a single request. It
// resolves the canonical excerpt for the requested letter type, builds the
// state graph (draft → format → comply), executes it, and extracts the
// Result from the final state.
func Execute(ctx context.Context, rt *Runtime, fields LetterFields) (*Result, error) {
	excerpt, err := rt.Instructions.Excerpt(ctx, fields.LetterType)
	if err != nil {
		return nil, fmt.Errorf("resolve excerpt: %w", err)
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyFields, fields)
	initialState = initialState.Set(KeyExcerpt, excerpt)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("letter-generation")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("draft", DraftNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("format", FormatNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("comply", ComplyNode(rt)); err != nil {
		return nil, err
	}

	// draft → format (unconditional)
	if err := graph.AddEdge("draft", "format", nil); err != nil {
		return nil, err
	}

	// format → comply (unconditional)
	if err := graph.AddEdge("format", "comply", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("draft"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("comply"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	letter, err := extractLetter(s)
	if err != nil {
		return nil, fmt.Errorf("final state: %w", err)
	}

	var applied []string
	if val, ok := s.Get(KeyNotices); ok {
		if phrases, ok := val.([]string); ok {
			applied = phrases
		}
	}

	traceVal, ok := s.Get(KeyTrace)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyTrace)
	}

	trace, ok := traceVal.([]instructions.Stage)
	if !ok {
		return nil, fmt.Errorf("%s is not []instructions.Stage", KeyTrace)
	}

	return &Result{
		Content:        letter,
		NoticesApplied: applied,
		Trace:          trace,
		CompletedAt:    time.Now().UTC(),
	}, nil
}
