package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// Section is a titled block of supporting material appended to a stage prompt.
type Section struct {
	Title string
	Body  string
}

// ComposePrompt builds a stage prompt by combining the stage instructions,
// the stage output spec, and any supporting sections in order. Sections with
// empty bodies are skipped.
func ComposePrompt(
	ctx context.Context,
	sys instructions.System,
	stage instructions.Stage,
	sections ...Section,
) (string, error) {
	text, err := sys.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := sys.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	for _, section := range sections {
		if section.Body == "" {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(section.Title)
		sb.WriteString("\n\n")
		sb.WriteString(section.Body)
	}

	return sb.String(), nil
}

// FieldsSection serializes the structured claim fields as a prompt section.
func FieldsSection(fields LetterFields) (Section, error) {
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return Section{}, fmt.Errorf("serialize letter fields: %w", err)
	}

	return Section{
		Title: "Structured claim details:",
		Body:  string(data),
	}, nil
}

// NoticesSection renders the required notices as a prompt section.
func NoticesSection(phrases []string) Section {
	var sb strings.Builder
	for _, phrase := range phrases {
		sb.WriteString("- ")
		sb.WriteString(phrase)
		sb.WriteString("\n")
	}

	return Section{
		Title: "Required notices (each must appear verbatim):",
		Body:  strings.TrimSpace(sb.String()),
	}
}
