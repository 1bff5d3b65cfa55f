package workflow_test

import (
	"errors"
	"testing"

	"github.com/Adhya2325/letter-generation/internal/workflow"
)

func TestVerifyIdentifiers(t *testing.T) {
	fields := testFields()

	t.Run("identifiers preserved", func(t *testing.T) {
		prev := "Re: policy POL-88421, claim CLM-10339."
		next := "RE: Policy Number POL-88421 / Claim Number CLM-10339"

		if err := workflow.VerifyIdentifiers(prev, next, fields); err != nil {
			t.Errorf("VerifyIdentifiers error: %v", err)
		}
	})

	t.Run("dropped policy number", func(t *testing.T) {
		prev := "Re: policy POL-88421, claim CLM-10339."
		next := "Re: claim CLM-10339."

		err := workflow.VerifyIdentifiers(prev, next, fields)
		if !errors.Is(err, workflow.ErrContentDropped) {
			t.Errorf("error = %v, want ErrContentDropped", err)
		}
	})

	t.Run("dropped claim number", func(t *testing.T) {
		prev := "Re: policy POL-88421, claim CLM-10339."
		next := "Re: policy POL-88421."

		err := workflow.VerifyIdentifiers(prev, next, fields)
		if !errors.Is(err, workflow.ErrContentDropped) {
			t.Errorf("error = %v, want ErrContentDropped", err)
		}
	})

	t.Run("identifier absent from both passes", func(t *testing.T) {
		prev := "No identifiers here."
		next := "Still no identifiers."

		if err := workflow.VerifyIdentifiers(prev, next, fields); err != nil {
			t.Errorf("VerifyIdentifiers error: %v", err)
		}
	})

	t.Run("empty identifier skipped", func(t *testing.T) {
		sparse := fields
		sparse.ClaimNumber = ""

		prev := "Re: policy POL-88421."
		next := "RE: POL-88421"

		if err := workflow.VerifyIdentifiers(prev, next, sparse); err != nil {
			t.Errorf("VerifyIdentifiers error: %v", err)
		}
	})
}

func TestVerifyIdentifiersPresent(t *testing.T) {
	fields := testFields()

	t.Run("both identifiers present", func(t *testing.T) {
		letter := "Re: Policy POL-88421, Claim CLM-10339.\n\nDear Jordan Blake,"

		if err := workflow.VerifyIdentifiersPresent(letter, fields); err != nil {
			t.Errorf("VerifyIdentifiersPresent error: %v", err)
		}
	})

	t.Run("policy number never drafted", func(t *testing.T) {
		letter := "Re: Claim CLM-10339.\n\nDear Jordan Blake,"

		err := workflow.VerifyIdentifiersPresent(letter, fields)
		if !errors.Is(err, workflow.ErrContentDropped) {
			t.Errorf("error = %v, want ErrContentDropped", err)
		}
	})

	t.Run("claim number never drafted", func(t *testing.T) {
		letter := "Re: Policy POL-88421.\n\nDear Jordan Blake,"

		err := workflow.VerifyIdentifiersPresent(letter, fields)
		if !errors.Is(err, workflow.ErrContentDropped) {
			t.Errorf("error = %v, want ErrContentDropped", err)
		}
	})

	t.Run("empty identifier skipped", func(t *testing.T) {
		sparse := fields
		sparse.PolicyNumber = ""

		letter := "Re: Claim CLM-10339."
		if err := workflow.VerifyIdentifiersPresent(letter, sparse); err != nil {
			t.Errorf("VerifyIdentifiersPresent error: %v", err)
		}
	})
}

func TestVerifyNotices(t *testing.T) {
	phrases := []string{
		"You have the right to appeal this decision.",
		"This denial is based solely on the policy provisions cited above.",
	}

	t.Run("all present", func(t *testing.T) {
		letter := "Dear Jordan,\n\nYou have the right to appeal this decision. " +
			"This denial is based solely on the policy provisions cited above.\n\nSincerely,"

		if err := workflow.VerifyNotices(letter, phrases); err != nil {
			t.Errorf("VerifyNotices error: %v", err)
		}
	})

	t.Run("one missing", func(t *testing.T) {
		letter := "Dear Jordan,\n\nYou have the right to appeal this decision.\n\nSincerely,"

		err := workflow.VerifyNotices(letter, phrases)
		if !errors.Is(err, workflow.ErrNoticeMissing) {
			t.Errorf("error = %v, want ErrNoticeMissing", err)
		}
	})

	t.Run("paraphrase does not count", func(t *testing.T) {
		letter := "You may appeal this decision. This denial is based solely on the policy provisions cited above."

		err := workflow.VerifyNotices(letter, phrases)
		if !errors.Is(err, workflow.ErrNoticeMissing) {
			t.Errorf("error = %v, want ErrNoticeMissing", err)
		}
	})

	t.Run("no required phrases", func(t *testing.T) {
		if err := workflow.VerifyNotices("anything", nil); err != nil {
			t.Errorf("VerifyNotices error: %v", err)
		}
	})
}
