// Package instructions implements the canonical instruction domain: letter
// types, the canonical instruction document with one excerpt per type, the
// per-stage prompt instructions and output specs, and the HTTP handler that
// exposes them.
package instructions

import (
	"encoding/json"
	"slices"
)

// LetterType identifies which kind of insurance letter to generate.
// It determines the canonical excerpt and the required compliance notices.
type LetterType string

// Supported letter types.
const (
	TypeCoverageDecision LetterType = "coverage_decision"
	TypeDenial           LetterType = "denial"
	TypeRequestForInfo   LetterType = "request_for_info"
)

var letterTypes = []LetterType{
	TypeCoverageDecision,
	TypeDenial,
	TypeRequestForInfo,
}

// LetterTypes returns the list of supported letter types.
func LetterTypes() []LetterType {
	return letterTypes
}

// Display returns the human-readable name for the letter type.
func (t LetterType) Display() string {
	switch t {
	case TypeCoverageDecision:
		return "Coverage Decision"
	case TypeDenial:
		return "Denial Letter"
	case TypeRequestForInfo:
		return "Request for Additional Information"
	default:
		return string(t)
	}
}

// UnmarshalJSON validates that the decoded string is a known letter type.
func (t *LetterType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := LetterType(raw)
	if !slices.Contains(letterTypes, v) {
		return ErrInvalidLetterType
	}
	*t = v
	return nil
}

// ParseLetterType validates a string as a known letter type.
// Returns ErrInvalidLetterType if the value is not recognized.
func ParseLetterType(s string) (LetterType, error) {
	v := LetterType(s)
	if !slices.Contains(letterTypes, v) {
		return "", ErrInvalidLetterType
	}
	return v, nil
}
