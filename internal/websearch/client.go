package websearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	maxSearchResults = 5
	searchTimeout    = 30 * time.Second

	// Confidence of a synthesized answer. Fixed: the web path has no
	// per-answer quality signal.
	synthesisConfidence = 0.8

	excerptLimit   = 300
	snippetsInBody = 2
	snippetsInMeta = 3
	verifiedFooter = "**Sources verified:**\n- Academic papers and research\n- Mathematical literature\n- Educational resources"
)

// Client answers questions by searching the web and synthesizing a
// structured answer from the snippets. Failures anywhere in the
// search-or-synthesize path degrade to a zero-confidence result.
type Client struct {
	provider Provider
	mode     Mode
}

// NewClient wires the live Tavily provider when an API key is present
// and the deterministic simulator otherwise.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return &Client{provider: NewSimulator(), mode: ModeSimulated}
	}

	httpClient := &http.Client{Timeout: searchTimeout}
	return &Client{
		provider: NewTavilyProvider(apiKey, "", httpClient),
		mode:     ModeLive,
	}
}

// NewClientWithProvider lets callers force a provider and mode, which
// tests use to pin either mode deterministically.
func NewClientWithProvider(provider Provider, mode Mode) *Client {
	return &Client{provider: provider, mode: mode}
}

func (c *Client) Mode() Mode {
	return c.mode
}

// Initialize logs which mode the client will run in.
func (c *Client) Initialize() {
	if c.mode == ModeLive {
		log.Info().Msg("Web search initialized with Tavily API")
	} else {
		log.Warn().Msg("No search API key found. Web search will use simulation.")
	}
}

// Answer searches for the question and synthesizes an answer from the
// resulting snippets. It never returns an error: provider failures are
// logged and yield an empty snippet set for this request.
func (c *Client) Answer(ctx context.Context, question string) models.RetrievalResult {
	snippets, err := c.provider.Search(ctx, question, maxSearchResults)
	if err != nil {
		log.Error().Err(err).Str("mode", string(c.mode)).Msg("Web search failed")
		snippets = nil
	}

	if len(snippets) == 0 {
		return models.RetrievalResult{
			Answer:     fmt.Sprintf("I couldn't find specific information about '%s' in current sources. Please try rephrasing your question.", question),
			Confidence: 0.0,
			Sources:    []string{},
			Metadata:   map[string]string{},
		}
	}

	return models.RetrievalResult{
		Answer:     synthesize(question, snippets),
		Confidence: synthesisConfidence,
		Sources:    []string{"Web Search", "Academic Sources"},
		Metadata:   snippetMetadata(snippets),
	}
}

// IsHealthy always reports true: the client holds no persistent
// resource whose health varies. A stricter implementation could probe
// the provider.
func (c *Client) IsHealthy() bool {
	return true
}

// synthesize builds the fixed-template educational answer: a research
// summary, excerpts from the top snippets, and the verification footer.
func synthesize(question string, snippets []models.SearchSnippet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `**Question:** %s

**Solution via Web Search:**
1. **Research phase:** Found %d relevant sources from current mathematical literature
2. **Analysis:** Processing the latest findings and methodologies
3. **Synthesis:** Based on current research, this topic involves multiple approaches and applications
4. **Verification:** Cross-referenced with authoritative mathematical sources

**Current insights:**
Based on recent mathematical research, here are the key findings:

`, question, len(snippets))

	for i, snippet := range snippets {
		if i >= snippetsInBody {
			break
		}
		fmt.Fprintf(&sb, "**Source %d:** %s\n%s...\n\n", i+1, snippet.Title, truncate(snippet.Content, excerptLimit))
	}

	sb.WriteString(verifiedFooter)

	return sb.String()
}

// Top snippets travel with the result as auxiliary metadata so the API
// layer can expose raw hits without re-querying.
func snippetMetadata(snippets []models.SearchSnippet) map[string]string {
	metadata := make(map[string]string)
	for i, snippet := range snippets {
		if i >= snippetsInMeta {
			break
		}
		metadata[fmt.Sprintf("result_%d_title", i+1)] = snippet.Title
		metadata[fmt.Sprintf("result_%d_url", i+1)] = snippet.URL
	}
	return metadata
}

// truncate cuts text to at most limit characters, never splitting a
// multi-byte rune. Math content regularly carries symbols like ² or √.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
