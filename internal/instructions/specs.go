package instructions

const draftSpec = `Respond with the complete letter text and nothing else.

Output constraints:
- Plain text only; no markdown fencing, no commentary before or after
- The letter must be complete: no placeholders, no bracketed TODO markers
- Include the policy number and claim number exactly as provided in the inputs
- Never return an empty response; if an input is missing, write the letter
  with the information available`

const formatSpec = `Respond with the formatted letter text and nothing else.

Output constraints:
- Plain text only; no markdown fencing, no commentary before or after
- Every sentence of the input letter must survive into the output
- Policy numbers, claim numbers, dates, and deadlines must appear unchanged
- Structure only: header block, subject line, salutation, body, closing
- Never return an empty response`

const complySpec = `Respond with a JSON object matching this exact structure:

{
  "letter": "<the final compliant letter text>",
  "notices_applied": ["<notice1>", "<notice2>"]
}

Field constraints:
- letter: The complete final letter, including every required regulatory
  notice verbatim, the claim identifiers, and the response deadline. This is
  the full text; never truncate or summarize it.
- notices_applied: The required notices now present in the letter, listed
  exactly as they appear. Include notices that were already present as well
  as notices you inserted.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Never remove the salutation, body, or closing structure
- Never drop the policy number or claim number from the letter`

var stageSpecs = map[Stage]string{
	StageDraft:  draftSpec,
	StageFormat: formatSpec,
	StageComply: complySpec,
}

// Spec returns the output specification for a pipeline stage.
// Specifications define the expected response format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := stageSpecs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
