// Package letters implements the letter domain. It validates generation
// requests, runs the generation pipeline, and shapes the result into a
// Letter suitable for JSON delivery or file download.
package letters

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/workflow"
)

// Request carries the claim details for a letter generation run.
type Request struct {
	LetterType   instructions.LetterType `json:"letter_type"`
	CompanyName  string                  `json:"company_name"`
	InsuredName  string                  `json:"insured_name"`
	PolicyNumber string                  `json:"policy_number"`
	ClaimNumber  string                  `json:"claim_number"`
	ContactPhone string                  `json:"contact_phone,omitempty"`
	DeadlineDays int                     `json:"response_deadline_days"`
	Notes        string                  `json:"notes,omitempty"`
}

// Validate checks the request for required fields. A zero deadline is valid
// and means no response deadline applies to the letter.
func (r Request) Validate() error {
	var missing []string

	if r.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if r.InsuredName == "" {
		missing = append(missing, "insured_name")
	}
	if r.PolicyNumber == "" {
		missing = append(missing, "policy_number")
	}
	if r.ClaimNumber == "" {
		missing = append(missing, "claim_number")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}

	if _, err := instructions.ParseLetterType(string(r.LetterType)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if r.DeadlineDays < 0 {
		return fmt.Errorf("%w: response_deadline_days must not be negative", ErrInvalidRequest)
	}

	return nil
}

// Fields converts the request into the structured fields the pipeline consumes.
func (r Request) Fields() workflow.LetterFields {
	return workflow.LetterFields{
		LetterType:   r.LetterType,
		CompanyName:  r.CompanyName,
		InsuredName:  r.InsuredName,
		PolicyNumber: r.PolicyNumber,
		ClaimNumber:  r.ClaimNumber,
		ContactPhone: r.ContactPhone,
		DeadlineDays: r.DeadlineDays,
		Notes:        r.Notes,
	}
}

// Letter is the final product of a generation run.
type Letter struct {
	ID             uuid.UUID               `json:"id"`
	LetterType     instructions.LetterType `json:"letter_type"`
	CompanyName    string                  `json:"company_name"`
	InsuredName    string                  `json:"insured_name"`
	PolicyNumber   string                  `json:"policy_number"`
	ClaimNumber    string                  `json:"claim_number"`
	Content        string                  `json:"content"`
	NoticesApplied []string                `json:"notices_applied"`
	GeneratedAt    time.Time               `json:"generated_at"`
	ModelName      string                  `json:"model_name"`
	ProviderName   string                  `json:"provider_name"`
}

// Filename derives the download filename from the letter type and the
// policy and claim numbers.
func (l Letter) Filename() string {
	return fmt.Sprintf("%s_%s_%s.txt", l.LetterType, l.PolicyNumber, l.ClaimNumber)
}
