package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
)

const (
	defaultTavilyURL = "https://api.tavily.com/search"

	// Domain hint prepended to every query so general-purpose search
	// stays on topic.
	queryPrefix = "mathematics "
)

// TavilyProvider issues live search requests against the Tavily API.
type TavilyProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTavilyProvider(apiKey string, baseURL string, httpClient *http.Client) *TavilyProvider {
	if baseURL == "" {
		baseURL = defaultTavilyURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &TavilyProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Tavily API request format
type tavilySearchRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

type tavilySearchResponse struct {
	Results []struct {
		Title   string  `json:"title"`
		Content string  `json:"content"`
		URL     string  `json:"url"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

func (p *TavilyProvider) Search(ctx context.Context, query string, maxResults int) ([]models.SearchSnippet, error) {
	payload := tavilySearchRequest{
		APIKey:        p.apiKey,
		Query:         queryPrefix + query,
		SearchDepth:   "basic",
		IncludeAnswer: true,
		MaxResults:    maxResults,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var data tavilySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	var snippets []models.SearchSnippet
	for _, item := range data.Results {
		snippets = append(snippets, models.SearchSnippet{
			Title:   item.Title,
			Content: item.Content,
			URL:     item.URL,
			Score:   item.Score,
		})
	}

	return snippets, nil
}
