package letters

import (
	"errors"
	"net/http"

	"github.com/Adhya2325/letter-generation/internal/instructions"
)

// Domain errors for letter operations.
var (
	ErrInvalidRequest   = errors.New("invalid letter request")
	ErrGenerationFailed = errors.New("letter generation failed")
)

// MapHTTPStatus maps letter domain errors to appropriate HTTP status codes.
// Generation failures surface as 502 since the upstream model, not the
// caller, is at fault.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, instructions.ErrInstructionNotFound) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrGenerationFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
