package guardrails

import (
	"strings"
)

const (
	stepMarker     = "**Step-by-step"
	responseHeader = "**Educational Mathematical Response:**\n\n"

	fallbackAnswer = "I apologize, but I couldn't generate a comprehensive answer. Please try rephrasing your question."

	educationalDisclaimer = "\n\n**Note:** This is an educational mathematics system. Please ensure your question is related to mathematical concepts."
)

var evasivePhrases = []string{
	"I cannot", "I'm unable", "I don't know", "I can't help",
}

// OutputValidator enforces a minimum answer quality. It is a total
// function: every input maps to a usable answer text.
type OutputValidator struct {
	evasive []string
}

func NewOutputValidator() *OutputValidator {
	return &OutputValidator{
		evasive: evasivePhrases,
	}
}

// Validate replaces answers shorter than 10 characters with a fixed
// fallback, prepends the educational header when the step marker is
// missing, and appends a disclaimer when the answer looks evasive.
// Header check runs first; the disclaimer check sees the modified text.
func (v *OutputValidator) Validate(answer string) string {
	if len(strings.TrimSpace(answer)) < 10 {
		return fallbackAnswer
	}

	if !v.hasEducationalFormat(answer) {
		answer = responseHeader + answer
	}

	for _, phrase := range v.evasive {
		if strings.Contains(answer, phrase) {
			return answer + educationalDisclaimer
		}
	}

	return answer
}

// Both the step marker and a previously prepended header count as a
// recognized educational format, which keeps Validate idempotent.
func (v *OutputValidator) hasEducationalFormat(answer string) bool {
	return strings.HasPrefix(answer, stepMarker) ||
		strings.HasPrefix(answer, strings.TrimSuffix(responseHeader, "\n\n"))
}
