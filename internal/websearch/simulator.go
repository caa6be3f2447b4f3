package websearch

import (
	"context"
	"fmt"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
)

// Simulator produces a deterministic two-snippet result set templated
// from the query. It stands in for the live provider when no API key is
// configured, so the web path stays exercisable in demos and tests.
type Simulator struct{}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Search(ctx context.Context, query string, maxResults int) ([]models.SearchSnippet, error) {
	snippets := []models.SearchSnippet{
		{
			Title:   fmt.Sprintf("Mathematical Research: %s", query),
			Content: fmt.Sprintf("Current research in %s shows significant developments in theoretical and applied mathematics. Recent studies indicate new methodologies and applications in various fields.", query),
			URL:     "https://example.com/math-research",
			Score:   0.9,
		},
		{
			Title:   fmt.Sprintf("Academic Insights: %s", query),
			Content: fmt.Sprintf("Academic perspective on %s reveals important theoretical foundations and practical implications for mathematical education and research.", query),
			URL:     "https://example.com/academic-paper",
			Score:   0.8,
		},
	}

	if maxResults < len(snippets) {
		snippets = snippets[:maxResults]
	}

	return snippets, nil
}
