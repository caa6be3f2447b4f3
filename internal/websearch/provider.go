package websearch

import (
	"context"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
)

// Provider returns ranked snippets for a query. Implementations: the
// Tavily HTTP provider and the deterministic local simulator.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchSnippet, error)
}

// Mode tells which provider the client was wired with. It is an explicit
// field so tests can force either mode deterministically.
type Mode string

const (
	ModeLive      Mode = "live"
	ModeSimulated Mode = "simulated"
)
