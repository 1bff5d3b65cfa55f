package instructions

import (
	"errors"
	"net/http"
)

// Domain errors for instruction operations.
var (
	ErrInstructionNotFound = errors.New("no canonical instruction excerpt for letter type")
	ErrInvalidLetterType   = errors.New("letter type must be coverage_decision, denial, or request_for_info")
	ErrInvalidStage        = errors.New("stage must be draft, format, or comply")
	ErrInvalidDocument     = errors.New("canonical instruction document is invalid")
)

// MapHTTPStatus maps instruction domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInstructionNotFound) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrInvalidLetterType) || errors.Is(err, ErrInvalidStage) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
