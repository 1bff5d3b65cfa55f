package letters

import (
	"context"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// System defines the public contract for letter domain operations.
type System interface {
	Handler(maxBody int64) *Handler

	Generate(ctx context.Context, req Request) (*Letter, error)
	Types() []instructions.LetterType
}
