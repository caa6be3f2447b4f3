package router

import (
	"math"
	"testing"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/config"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
)

func newTestClassifier() *KeywordClassifier {
	return NewKeywordClassifier(config.DefaultRouting())
}

func TestKeywordClassifier_Classify(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		name         string
		question     string
		wantRoute    models.Route
		wantMinKB    int
		wantMinWeb   int
		wantMaxConf  float64
		wantConfNear float64
	}{
		{
			name:         "derivative question goes to knowledge base",
			question:     "What is the derivative of x^2?",
			wantRoute:    models.RouteKnowledgeBase,
			wantMinKB:    2, // "derivative" and "what is"
			wantConfNear: 0.8,
		},
		{
			name:       "research question goes to web search",
			question:   "Latest research in graph theory",
			wantRoute:  models.RouteWebSearch,
			wantMinWeb: 2, // "latest" and "research"
		},
		{
			name:      "no keywords at all defaults to web search",
			question:  "tell me about primes",
			wantRoute: models.RouteWebSearch,
		},
		{
			name:        "kb confidence is capped at 0.9",
			question:    "solve the basic simple fundamental quadratic equation formula theorem derivative integral",
			wantRoute:   models.RouteKnowledgeBase,
			wantMaxConf: 0.9,
		},
		{
			name:        "web confidence is capped at 0.8",
			question:    "latest recent new current modern advanced research breakthrough discovery trend",
			wantRoute:   models.RouteWebSearch,
			wantMaxConf: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.question)
			if got.Route != tt.wantRoute {
				t.Errorf("Route: %v, want %v (decision: %+v)", got.Route, tt.wantRoute, got)
			}
			if got.KBScore < tt.wantMinKB {
				t.Errorf("KBScore: %d, want >= %d", got.KBScore, tt.wantMinKB)
			}
			if got.WebScore < tt.wantMinWeb {
				t.Errorf("WebScore: %d, want >= %d", got.WebScore, tt.wantMinWeb)
			}
			if tt.wantMaxConf > 0 && got.Confidence > tt.wantMaxConf+1e-9 {
				t.Errorf("Confidence: %v, want <= %v", got.Confidence, tt.wantMaxConf)
			}
			if tt.wantConfNear > 0 && math.Abs(got.Confidence-tt.wantConfNear) > 1e-9 {
				t.Errorf("Confidence: %v, want %v", got.Confidence, tt.wantConfNear)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Confidence out of range: %v", got.Confidence)
			}
		})
	}
}

func TestKeywordClassifier_BasicMathShapeForcesKnowledgeBase(t *testing.T) {
	classifier := newTestClassifier()

	// Heavy web vocabulary, but the x^2 shape must win.
	question := "latest recent modern research on x^2"
	got := classifier.Classify(question)

	if got.WebScore <= got.KBScore {
		t.Fatalf("test setup broken: expected web score dominance, got %+v", got)
	}
	if got.Route != models.RouteKnowledgeBase {
		t.Errorf("Route: %v, want knowledge_base despite web score dominance", got.Route)
	}
}

func TestKeywordClassifier_TieGoesToWebSearch(t *testing.T) {
	classifier := newTestClassifier()

	// No keywords from either vocabulary and no math shape: 0-0 tie.
	got := classifier.Classify("tell me about primes")
	if got.KBScore != 0 || got.WebScore != 0 {
		t.Fatalf("expected 0-0 tie, got %+v", got)
	}
	if got.Route != models.RouteWebSearch {
		t.Errorf("tie should route to web_search, got %v", got.Route)
	}
}

func TestKeywordClassifier_MonotonicInEvidence(t *testing.T) {
	classifier := newTestClassifier()

	// Adding distinct kb terms one at a time never lowers score or confidence.
	kbTerms := []string{"derivative", "integral", "quadratic", "pythagorean", "theorem", "formula"}
	question := ""
	prevScore := -1
	prevConf := 0.0
	for _, term := range kbTerms {
		question += term + " "
		got := classifier.Classify(question)
		if got.KBScore < prevScore {
			t.Errorf("kb score decreased after adding %q: %d -> %d", term, prevScore, got.KBScore)
		}
		if got.Confidence+1e-9 < prevConf {
			t.Errorf("confidence decreased after adding %q: %v -> %v", term, prevConf, got.Confidence)
		}
		if got.Confidence > 0.9+1e-9 {
			t.Errorf("kb confidence above cap: %v", got.Confidence)
		}
		prevScore = got.KBScore
		prevConf = got.Confidence
	}
}
