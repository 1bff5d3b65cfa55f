package letters

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Adhya2325/letter-generation/pkg/handlers"
	"github.com/Adhya2325/letter-generation/pkg/routes"
)

// Handler provides HTTP endpoints for letter operations.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxBody int64
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBody int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "letters"),
		maxBody: maxBody,
	}
}

// Routes returns the route group definition for letter endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/letters",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/types", Handler: h.Types},
			{Method: "POST", Pattern: "", Handler: h.Generate},
			{Method: "POST", Pattern: "/file", Handler: h.Download},
		},
	}
}

// Types returns the letter types available for generation.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Types())
}

// Generate runs the generation pipeline for a JSON request body and returns
// the letter as JSON. Returns 201 with the letter on success.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	letter, ok := h.generate(w, r)
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, letter)
}

// Download runs the generation pipeline and returns the letter body as a
// plain text file attachment named <type>_<policy>_<claim>.txt.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	letter, ok := h.generate(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", letter.Filename()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(letter.Content)); err != nil {
		h.logger.Error("write letter attachment", "error", err)
	}
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*Letter, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return nil, false
	}

	letter, err := h.sys.Generate(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return nil, false
	}

	return letter, true
}
