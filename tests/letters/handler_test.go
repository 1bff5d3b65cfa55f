package letters_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/letters"
	"github.com/Adhya2325/letter-generation/pkg/routes"
)

// fakeSystem implements letters.System without running the pipeline.
type fakeSystem struct {
	generateErr error
}

func (f *fakeSystem) Handler(maxBody int64) *letters.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return letters.NewHandler(f, logger, maxBody)
}

func (f *fakeSystem) Generate(ctx context.Context, req letters.Request) (*letters.Letter, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.generateErr != nil {
		return nil, f.generateErr
	}

	return &letters.Letter{
		ID:             uuid.New(),
		LetterType:     req.LetterType,
		CompanyName:    req.CompanyName,
		InsuredName:    req.InsuredName,
		PolicyNumber:   req.PolicyNumber,
		ClaimNumber:    req.ClaimNumber,
		Content:        "Dear " + req.InsuredName + ",\n\nYour claim has been reviewed.",
		NoticesApplied: []string{"You have the right to appeal this decision."},
		GeneratedAt:    time.Now().UTC(),
		ModelName:      "test-model",
		ProviderName:   "test-provider",
	}, nil
}

func (f *fakeSystem) Types() []instructions.LetterType {
	return instructions.LetterTypes()
}

func newTestMux(sys letters.System) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(1024*1024).Routes())
	return mux
}

func requestBody(t *testing.T) string {
	t.Helper()

	body, err := json.Marshal(validRequest())
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return string(body)
}

func TestHandlerTypes(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/letters/types", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var types []instructions.LetterType
	if err := json.Unmarshal(rec.Body.Bytes(), &types); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(types) != 3 {
		t.Errorf("types: got %d, want 3", len(types))
	}
}

func TestHandlerGenerate(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/letters", strings.NewReader(requestBody(t)))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var letter letters.Letter
	if err := json.Unmarshal(rec.Body.Bytes(), &letter); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if letter.Content == "" {
		t.Error("empty letter content")
	}
	if letter.ID == uuid.Nil {
		t.Error("missing letter id")
	}
	if len(letter.NoticesApplied) == 0 {
		t.Error("missing notices applied")
	}
}

func TestHandlerGenerateInvalidBody(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/letters", strings.NewReader("{not json"))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandlerGenerateValidationFailure(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	body := `{"letter_type":"denial","company_name":"Acme Mutual"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/letters", strings.NewReader(body))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandlerGenerateUpstreamFailure(t *testing.T) {
	sys := &fakeSystem{
		generateErr: fmt.Errorf("%w: chat call timed out", letters.ErrGenerationFailed),
	}
	mux := newTestMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/letters", strings.NewReader(requestBody(t)))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rec.Code)
	}
}

func TestHandlerDownload(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/letters/file", strings.NewReader(requestBody(t)))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content-type: got %s, want text/plain", ct)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, `denial_POL-88421_CLM-10339.txt`) {
		t.Errorf("content-disposition: got %s", disposition)
	}
	if !strings.Contains(rec.Body.String(), "Your claim has been reviewed") {
		t.Errorf("body: got %s", rec.Body.String())
	}
}

func TestHandlerBodyLimit(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, (&fakeSystem{}).Handler(64).Routes())

	oversized := fmt.Sprintf(`{"letter_type":"denial","notes":%q}`, strings.Repeat("x", 512))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/letters", strings.NewReader(oversized))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
