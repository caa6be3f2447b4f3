package router

import (
	"regexp"
	"strings"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/config"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
	"github.com/rs/zerolog/log"
)

// Classifier decides which answer source should handle a question.
// The keyword implementation below is one strategy; a learned classifier
// can replace it as long as confidence stays monotonic in evidence.
type Classifier interface {
	Classify(question string) models.RouteDecision
}

// A variable-exponent expression or a literal calculus/algebra term.
// A match forces the knowledge base route regardless of scores.
var basicMathShape = regexp.MustCompile(`(x\^?\d|derivative|integral|equation)`)

// KeywordClassifier scores a question against two fixed vocabularies and
// routes to whichever side collected more evidence. The confidences are
// calibration heuristics, not probabilities.
type KeywordClassifier struct {
	kbKeywords  []string
	webKeywords []string
}

func NewKeywordClassifier(cfg config.RoutingConfig) *KeywordClassifier {
	return &KeywordClassifier{
		kbKeywords:  cfg.KBKeywords,
		webKeywords: cfg.WebKeywords,
	}
}

func (c *KeywordClassifier) Classify(question string) models.RouteDecision {
	questionLower := strings.ToLower(question)

	kbScore := countMatches(questionLower, c.kbKeywords)
	webScore := countMatches(questionLower, c.webKeywords)
	hasBasicMath := basicMathShape.MatchString(questionLower)

	var decision models.RouteDecision
	if kbScore > webScore || hasBasicMath {
		decision = models.RouteDecision{
			Route:      models.RouteKnowledgeBase,
			Confidence: min(0.9, 0.6+float64(kbScore)*0.1),
			Reason:     "Question matches knowledge base content",
			KBScore:    kbScore,
			WebScore:   webScore,
		}
	} else {
		// Ties fall through to web search: the condition above is a
		// strict comparison.
		decision = models.RouteDecision{
			Route:      models.RouteWebSearch,
			Confidence: min(0.8, 0.5+float64(webScore)*0.1),
			Reason:     "Question requires current information or advanced topics",
			KBScore:    kbScore,
			WebScore:   webScore,
		}
	}

	log.Info().
		Str("route", string(decision.Route)).
		Float64("confidence", decision.Confidence).
		Int("kb_score", kbScore).
		Int("web_score", webScore).
		Bool("basic_math", hasBasicMath).
		Msg("Routing decision")

	return decision
}

func countMatches(question string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(question, keyword) {
			count++
		}
	}
	return count
}
