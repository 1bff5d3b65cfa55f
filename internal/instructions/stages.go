package instructions

import (
	"encoding/json"
	"slices"
)

// Stage represents one unit of the letter generation pipeline.
type Stage string

// Pipeline stages, in execution order.
const (
	StageDraft  Stage = "draft"
	StageFormat Stage = "format"
	StageComply Stage = "comply"
)

var stages = []Stage{
	StageDraft,
	StageFormat,
	StageComply,
}

// Stages returns the pipeline stages in execution order.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known pipeline stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
