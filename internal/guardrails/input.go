package guardrails

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

type blockedPattern struct {
	pattern  *regexp.Regexp
	category string
}

// Blocked content is matched on any substring, case-insensitive,
// regardless of surrounding context.
var defaultBlockedPatterns = []blockedPattern{
	{regexp.MustCompile(`(?i)(hack|exploit|malware|virus)`), "security_exploit"},
	{regexp.MustCompile(`(?i)(personal\s+information|private\s+data|social\s+security)`), "private_data"},
	{regexp.MustCompile(`(?i)(violent|harmful|illegal|dangerous)`), "harmful_content"},
	{regexp.MustCompile(`(?i)(password|credit\s+card|bank\s+account)`), "financial_credentials"},
}

// DefaultMathVocabulary spans calculus, algebra, geometry and statistics.
// A single term is enough evidence that the question is math-related.
var DefaultMathVocabulary = []string{
	"equation", "derivative", "integral", "theorem", "proof",
	"calculation", "formula", "solve", "compute", "mathematics",
	"algebra", "geometry", "calculus", "statistics", "probability",
	"function", "limit", "matrix", "vector", "graph", "number",
	"polynomial", "logarithm", "exponential", "trigonometry",
}

var defaultQuestionWords = []string{
	"what", "how", "why", "where", "when", "explain", "solve", "find", "calculate",
}

var (
	digitRegex      = regexp.MustCompile(`\d`)
	mathSymbolRegex = regexp.MustCompile(`[+\-*/=^()√∑∫]`)
)

// InputValidator rejects disallowed or non-mathematical questions.
// Pure function of the input text and its fixed pattern tables.
type InputValidator struct {
	blocked       []blockedPattern
	mathKeywords  []string
	questionWords []string
}

func NewInputValidator() *InputValidator {
	return &InputValidator{
		blocked:       defaultBlockedPatterns,
		mathKeywords:  DefaultMathVocabulary,
		questionWords: defaultQuestionWords,
	}
}

func (v *InputValidator) Validate(question string) ValidationResult {
	if len(strings.TrimSpace(question)) < 3 {
		return ValidationResult{
			IsValid:  false,
			Reason:   "Question is empty or too short",
			Category: "too_short",
		}
	}

	for _, bp := range v.blocked {
		if bp.pattern.MatchString(question) {
			log.Info().Str("category", bp.category).Msg("Question blocked by content rules")
			return ValidationResult{
				IsValid:  false,
				Reason:   "Question contains disallowed content",
				Category: bp.category,
			}
		}
	}

	questionLower := strings.ToLower(question)

	hasMathContent := containsAny(questionLower, v.mathKeywords)
	hasNumbers := digitRegex.MatchString(question)
	hasMathSymbols := mathSymbolRegex.MatchString(question)
	hasQuestionWords := containsAny(questionLower, v.questionWords)

	if hasMathContent || hasNumbers || hasMathSymbols || hasQuestionWords {
		return ValidationResult{IsValid: true, Reason: "Question validated"}
	}

	return ValidationResult{
		IsValid:  false,
		Reason:   "Question does not appear to be mathematics-related",
		Category: "off_topic",
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
