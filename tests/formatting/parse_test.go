package formatting_test

import (
	"errors"
	"testing"

	"github.com/Adhya2325/letter-generation/pkg/formatting"
)

type reviewed struct {
	Letter  string   `json:"letter"`
	Notices []string `json:"notices_applied"`
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[reviewed](`{"letter":"Dear Sir","notices_applied":["appeal"]}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Letter != "Dear Sir" || len(got.Notices) != 1 {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("direct JSON with whitespace", func(t *testing.T) {
		got, err := formatting.Parse[reviewed](`  {"letter":"padded"}  `)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Letter != "padded" {
			t.Errorf("Letter = %q, want padded", got.Letter)
		}
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		input := "```json\n{\"letter\":\"fenced\"}\n```"
		got, err := formatting.Parse[reviewed](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Letter != "fenced" {
			t.Errorf("Letter = %q, want fenced", got.Letter)
		}
	})

	t.Run("markdown fenced without language tag", func(t *testing.T) {
		input := "```\n{\"letter\":\"bare\"}\n```"
		got, err := formatting.Parse[reviewed](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Letter != "bare" {
			t.Errorf("Letter = %q, want bare", got.Letter)
		}
	})

	t.Run("markdown fenced with surrounding text", func(t *testing.T) {
		input := "Here is the reviewed letter:\n```json\n{\"letter\":\"wrapped\"}\n```\nDone."
		got, err := formatting.Parse[reviewed](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Letter != "wrapped" {
			t.Errorf("Letter = %q, want wrapped", got.Letter)
		}
	})

	t.Run("invalid content returns ErrParseFailed", func(t *testing.T) {
		_, err := formatting.Parse[reviewed]("not json at all")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("empty string returns ErrParseFailed", func(t *testing.T) {
		_, err := formatting.Parse[reviewed]("")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})
}
