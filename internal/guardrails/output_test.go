package guardrails

import (
	"strings"
	"testing"
)

func TestOutputValidator(t *testing.T) {
	validator := NewOutputValidator()

	tests := []struct {
		name            string
		answer          string
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:         "empty answer gets fallback",
			answer:       "",
			wantContains: []string{"I apologize"},
		},
		{
			name:         "short answer gets fallback",
			answer:       "  2x  ",
			wantContains: []string{"I apologize"},
		},
		{
			name:            "step formatted answer kept intact",
			answer:          "**Step-by-step solution:**\n\n1. Apply the power rule: f'(x) = 2x",
			wantContains:    []string{"power rule"},
			wantNotContains: []string{"Educational Mathematical Response"},
		},
		{
			name:         "plain answer gets educational header",
			answer:       "The result follows from the chain rule applied twice.",
			wantContains: []string{"**Educational Mathematical Response:**", "chain rule"},
		},
		{
			name:         "evasive answer gets disclaimer",
			answer:       "**Step-by-step solution:**\n\nI cannot determine the closed form here.",
			wantContains: []string{"**Note:** This is an educational mathematics system"},
		},
		{
			name:   "header and disclaimer can both apply",
			answer: "Unfortunately I don't know the answer to this question.",
			wantContains: []string{
				"**Educational Mathematical Response:**",
				"**Note:** This is an educational mathematics system",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.Validate(tt.answer)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Validate(%q) = %q, want substring %q", tt.answer, got, want)
				}
			}
			for _, notWant := range tt.wantNotContains {
				if strings.Contains(got, notWant) {
					t.Errorf("Validate(%q) = %q, must not contain %q", tt.answer, got, notWant)
				}
			}
		})
	}
}

func TestOutputValidator_Idempotent(t *testing.T) {
	validator := NewOutputValidator()

	answers := []string{
		"**Step-by-step solution:**\n\n1. Factor the polynomial completely.",
		"The distribution converges to the standard normal by the central limit theorem.",
	}

	for _, answer := range answers {
		once := validator.Validate(answer)
		twice := validator.Validate(once)
		if once != twice {
			t.Errorf("Validate is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

func TestOutputValidator_MinimumLengthGuarantee(t *testing.T) {
	validator := NewOutputValidator()

	for _, answer := range []string{"", "x", "short", "**Step-"} {
		got := validator.Validate(answer)
		if len(strings.TrimSpace(got)) < 10 {
			t.Errorf("Validate(%q) = %q, shorter than 10 characters", answer, got)
		}
	}
}
