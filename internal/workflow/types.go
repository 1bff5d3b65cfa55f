package workflow

import (
	"time"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// State bag keys shared across pipeline nodes.
const (
	KeyFields  = "letter_fields"
	KeyExcerpt = "canonical_excerpt"
	KeyLetter  = "letter_text"
	KeyNotices = "notices_applied"
	KeyTrace   = "stage_trace"
)

// LetterFields carries the structured claim inputs through the pipeline.
// It is constructed once per run and read-only thereafter.
type LetterFields struct {
	LetterType   instructions.LetterType `json:"letter_type"`
	CompanyName  string                  `json:"company_name"`
	InsuredName  string                  `json:"insured_name"`
	PolicyNumber string                  `json:"policy_number"`
	ClaimNumber  string                  `json:"claim_number"`
	ContactPhone string                  `json:"contact_phone,omitempty"`
	DeadlineDays int                     `json:"response_deadline_days"`
	Notes        string                  `json:"notes,omitempty"`
}

// Result is the final output from a letter generation pipeline execution.
type Result struct {
	Content        string               `json:"content"`
	NoticesApplied []string             `json:"notices_applied"`
	Trace          []instructions.Stage `json:"trace"`
	CompletedAt    time.Time            `json:"completed_at"`
}
