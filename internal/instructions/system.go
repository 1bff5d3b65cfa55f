package instructions

import (
	"context"
	"log/slog"
)

// System defines the public contract for instruction domain operations.
// The canonical document behind it is loaded once and read-only, so every
// method is safe for concurrent use.
type System interface {
	Handler() *Handler

	Excerpt(ctx context.Context, t LetterType) (string, error)
	Notices(ctx context.Context, t LetterType) ([]string, error)
	Instructions(ctx context.Context, stage Stage) (string, error)
	Spec(ctx context.Context, stage Stage) (string, error)
	Types() []LetterType
}

type service struct {
	doc    *Document
	logger *slog.Logger
}

// New loads the canonical instruction document and creates an instruction
// system. A load or parse failure is fatal for startup: no letters can be
// produced without the canonical document.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	doc, err := LoadDocument(cfg.Path)
	if err != nil {
		return nil, err
	}

	source := cfg.Path
	if source == "" {
		source = "embedded"
	}

	logger = logger.With("system", "instructions")
	logger.Info("canonical instructions loaded",
		"source", source,
		"letter_types", len(doc.Types()),
	)

	return &service{doc: doc, logger: logger}, nil
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Excerpt(_ context.Context, t LetterType) (string, error) {
	return s.doc.Excerpt(t)
}

func (s *service) Notices(_ context.Context, t LetterType) ([]string, error) {
	return Notices(t)
}

func (s *service) Instructions(_ context.Context, stage Stage) (string, error) {
	return Instructions(stage)
}

func (s *service) Spec(_ context.Context, stage Stage) (string, error) {
	return Spec(stage)
}

func (s *service) Types() []LetterType {
	return s.doc.Types()
}
