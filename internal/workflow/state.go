package workflow

import (
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

func extractFields(s state.State) (LetterFields, error) {
	val, ok := s.Get(KeyFields)
	if !ok {
		return LetterFields{}, fmt.Errorf("missing %s in state", KeyFields)
	}

	fields, ok := val.(LetterFields)
	if !ok {
		return LetterFields{}, fmt.Errorf("%s is not LetterFields", KeyFields)
	}

	return fields, nil
}

func extractExcerpt(s state.State) (string, error) {
	val, ok := s.Get(KeyExcerpt)
	if !ok {
		return "", fmt.Errorf("missing %s in state", KeyExcerpt)
	}

	excerpt, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", KeyExcerpt)
	}

	return excerpt, nil
}

func extractLetter(s state.State) (string, error) {
	val, ok := s.Get(KeyLetter)
	if !ok {
		return "", fmt.Errorf("missing %s in state", KeyLetter)
	}

	letter, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", KeyLetter)
	}

	return letter, nil
}

func appendTrace(s state.State, stage instructions.Stage) state.State {
	var trace []instructions.Stage
	if val, ok := s.Get(KeyTrace); ok {
		if existing, ok := val.([]instructions.Stage); ok {
			trace = existing
		}
	}

	return s.Set(KeyTrace, append(trace, stage))
}
