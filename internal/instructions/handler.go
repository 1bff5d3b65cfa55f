package instructions

import (
	"log/slog"
	"net/http"

	"github.com/Adhya2325/letter-generation/pkg/handlers"
	"github.com/Adhya2325/letter-generation/pkg/routes"
)

// Handler provides HTTP endpoints for instruction operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// TypeContent is the response type for excerpt and notice endpoints.
type TypeContent struct {
	Type    LetterType `json:"type"`
	Display string     `json:"display"`
	Content string     `json:"content,omitempty"`
	Notices []string   `json:"notices,omitempty"`
}

// StageContent is the response type for stage-scoped content endpoints.
type StageContent struct {
	Stage   Stage  `json:"stage"`
	Content string `json:"content"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "instructions"),
	}
}

// Routes returns the route group definition for instruction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/instructions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Types},
			{Method: "GET", Pattern: "/stages", Handler: h.Stages},
			{Method: "GET", Pattern: "/stages/{stage}", Handler: h.StageInstructions},
			{Method: "GET", Pattern: "/stages/{stage}/spec", Handler: h.StageSpec},
			{Method: "GET", Pattern: "/{type}", Handler: h.Excerpt},
			{Method: "GET", Pattern: "/{type}/notices", Handler: h.Notices},
		},
	}
}

// Types returns the letter types the canonical document covers.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	types := h.sys.Types()

	payload := make([]TypeContent, 0, len(types))
	for _, t := range types {
		payload = append(payload, TypeContent{Type: t, Display: t.Display()})
	}

	handlers.RespondJSON(w, http.StatusOK, payload)
}

// Stages returns the pipeline stages in execution order.
func (h *Handler) Stages(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Stages())
}

// Excerpt returns the canonical instruction excerpt for a letter type.
func (h *Handler) Excerpt(w http.ResponseWriter, r *http.Request) {
	t, err := ParseLetterType(r.PathValue("type"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	excerpt, err := h.sys.Excerpt(r.Context(), t)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TypeContent{
		Type:    t,
		Display: t.Display(),
		Content: excerpt,
	})
}

// Notices returns the required regulatory notices for a letter type.
func (h *Handler) Notices(w http.ResponseWriter, r *http.Request) {
	t, err := ParseLetterType(r.PathValue("type"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	phrases, err := h.sys.Notices(r.Context(), t)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TypeContent{
		Type:    t,
		Display: t.Display(),
		Notices: phrases,
	})
}

// StageInstructions returns the prompt instructions for a pipeline stage.
func (h *Handler) StageInstructions(w http.ResponseWriter, r *http.Request) {
	stage, err := ParseStage(r.PathValue("stage"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	text, err := h.sys.Instructions(r.Context(), stage)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StageContent{Stage: stage, Content: text})
}

// StageSpec returns the output specification for a pipeline stage.
func (h *Handler) StageSpec(w http.ResponseWriter, r *http.Request) {
	stage, err := ParseStage(r.PathValue("stage"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	text, err := h.sys.Spec(r.Context(), stage)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StageContent{Stage: stage, Content: text})
}
