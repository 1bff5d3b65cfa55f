package instructions

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// The default canonical instruction set ships with the binary. A deployment
// can point LETTERGEN_INSTRUCTIONS_PATH (or the [instructions] config section)
// at an externally authored document to replace it.
//
//go:embed canonical.txt
var defaultCanonical string

const excerptDelimiter = "== LETTER TYPE:"

// Document holds the parsed canonical instruction set: one excerpt per
// letter type. It is loaded once at process start and read-only thereafter.
type Document struct {
	excerpts map[LetterType]string
}

// LoadDocument reads and parses the canonical instruction document at path.
// An empty path loads the embedded default document.
func LoadDocument(path string) (*Document, error) {
	text := defaultCanonical

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read canonical instructions: %w", err)
		}
		text = string(data)
	}

	return ParseDocument(text)
}

// ParseDocument parses canonical instruction text into per-type excerpts.
// Excerpts are delimited by lines of the form "== LETTER TYPE: <NAME> ==";
// text before the first delimiter is preamble and is discarded. Headers that
// do not name a supported letter type fail parsing.
func ParseDocument(text string) (*Document, error) {
	excerpts := make(map[LetterType]string)

	var current LetterType
	var body strings.Builder

	flush := func() {
		if current != "" {
			excerpts[current] = strings.TrimSpace(body.String())
		}
		body.Reset()
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), excerptDelimiter) {
			flush()

			t, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			current = t
			continue
		}

		if current != "" {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	flush()

	if len(excerpts) == 0 {
		return nil, fmt.Errorf("%w: no letter type excerpts found", ErrInvalidDocument)
	}

	for t, excerpt := range excerpts {
		if excerpt == "" {
			return nil, fmt.Errorf("%w: empty excerpt for %s", ErrInvalidDocument, t)
		}
	}

	return &Document{excerpts: excerpts}, nil
}

// Excerpt returns the canonical excerpt for the given letter type.
// Returns ErrInstructionNotFound when the document has no excerpt for it.
func (d *Document) Excerpt(t LetterType) (string, error) {
	excerpt, ok := d.excerpts[t]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInstructionNotFound, t)
	}
	return excerpt, nil
}

// Types returns the letter types the document has excerpts for.
func (d *Document) Types() []LetterType {
	var types []LetterType
	for _, t := range letterTypes {
		if _, ok := d.excerpts[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

func parseHeader(line string) (LetterType, error) {
	name := strings.TrimSpace(line)
	name = strings.TrimPrefix(name, excerptDelimiter)
	name = strings.TrimSuffix(name, "==")
	name = strings.TrimSpace(name)

	switch strings.ToUpper(name) {
	case "COVERAGE DECISION":
		return TypeCoverageDecision, nil
	case "DENIAL", "DENIAL LETTER":
		return TypeDenial, nil
	case "REQUEST FOR ADDITIONAL INFORMATION", "REQUEST FOR INFO":
		return TypeRequestForInfo, nil
	default:
		return "", fmt.Errorf("%w: unknown letter type header %q", ErrInvalidDocument, name)
	}
}
