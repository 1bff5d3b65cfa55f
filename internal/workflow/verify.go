package workflow

import (
	"fmt"
	"strings"
)

// VerifyIdentifiers checks that the policy and claim numbers present in the
// previous stage's text survive into the next stage's text. A generative
// rewrite quietly dropping an identifier is a pipeline failure, not a
// formatting preference.
func VerifyIdentifiers(prev, next string, fields LetterFields) error {
	for _, id := range []string{fields.PolicyNumber, fields.ClaimNumber} {
		if id == "" {
			continue
		}
		if strings.Contains(prev, id) && !strings.Contains(next, id) {
			return fmt.Errorf("%w: identifier %q", ErrContentDropped, id)
		}
	}
	return nil
}

// VerifyIdentifiersPresent checks that every non-empty policy and claim
// number appears in the letter text. The draft must carry the identifiers
// before the survival checks downstream have anything to protect.
func VerifyIdentifiersPresent(letter string, fields LetterFields) error {
	for _, id := range []string{fields.PolicyNumber, fields.ClaimNumber} {
		if id == "" {
			continue
		}
		if !strings.Contains(letter, id) {
			return fmt.Errorf("%w: identifier %q not present", ErrContentDropped, id)
		}
	}
	return nil
}

// VerifyNotices checks that every required notice phrase appears verbatim in
// the final letter. The compliance model is instructed to include them, but
// the guarantee is only as good as this deterministic check.
func VerifyNotices(letter string, phrases []string) error {
	for _, phrase := range phrases {
		if !strings.Contains(letter, phrase) {
			return fmt.Errorf("%w: %q", ErrNoticeMissing, phrase)
		}
	}
	return nil
}
