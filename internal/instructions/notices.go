package instructions

// Required regulatory notices per letter type. The compliance stage is
// instructed to include each notice verbatim, and the workflow verifies their
// presence deterministically after the generative pass.

var coverageDecisionNotices = []string{
	"This determination is based on the policy provisions cited above.",
	"If you disagree with this determination, you may request a review of your claim.",
}

var denialNotices = []string{
	"You have the right to appeal this decision.",
	"If you believe this decision was made in error, you may submit a written request for reconsideration.",
	"This denial is based solely on the policy provisions cited above.",
}

var requestForInfoNotices = []string{
	"Your claim remains open pending receipt of the requested information.",
	"Failure to respond within the stated deadline may affect the evaluation of your claim.",
}

var notices = map[LetterType][]string{
	TypeCoverageDecision: coverageDecisionNotices,
	TypeDenial:           denialNotices,
	TypeRequestForInfo:   requestForInfoNotices,
}

// Notices returns the required regulatory notices for a letter type.
// Returns ErrInvalidLetterType if the type is not recognized.
func Notices(t LetterType) ([]string, error) {
	phrases, ok := notices[t]
	if !ok {
		return nil, ErrInvalidLetterType
	}
	return phrases, nil
}
