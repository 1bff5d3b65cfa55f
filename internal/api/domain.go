package api

import (
	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/letters"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Instructions instructions.System
	Letters      letters.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	lettersSystem := letters.New(
		runtime.Agent,
		runtime.Instructions,
		runtime.Logger,
	)

	return &Domain{
		Instructions: runtime.Instructions,
		Letters:      lettersSystem,
	}
}
