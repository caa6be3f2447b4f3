package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/api/middleware"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/config"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/feedback"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/guardrails"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/knowledge"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/pipeline"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/router"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/websearch"
)

// newTestServer wires the whole service with in-memory dependencies and
// the simulated web provider.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := knowledge.NewStore(knowledge.NewMemoryIndex(), "lexical-overlap (in-memory)")
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("knowledge init: %v", err)
	}

	webClient := websearch.NewClientWithProvider(websearch.NewSimulator(), websearch.ModeSimulated)
	records := feedback.NewMemoryStore()

	logger := zerolog.Nop()
	p := pipeline.New(
		guardrails.NewInputValidator(),
		guardrails.NewOutputValidator(),
		router.NewKeywordClassifier(config.DefaultRouting()),
		store,
		webClient,
		records,
		&logger,
	)

	handler := NewHandler(p, feedback.NewService(records), store, webClient)

	container := restful.NewContainer()
	container.Filter(middleware.RecoverPanic)
	RegisterRoutes(container, handler)

	server := httptest.NewServer(container)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestAPI_AskKnowledgeBaseQuestion(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/ask", models.AskRequest{Question: "What is the derivative of x²?"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var askResponse models.AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&askResponse); err != nil {
		t.Fatal(err)
	}
	if askResponse.RouteUsed != models.RouteKnowledgeBase {
		t.Errorf("route_used: %v", askResponse.RouteUsed)
	}
	if !strings.Contains(askResponse.Answer, "power rule") {
		t.Errorf("answer: %q", askResponse.Answer)
	}
	if askResponse.QuestionID == "" {
		t.Error("question_id missing")
	}
}

func TestAPI_AskRejectedQuestion(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name     string
		question string
	}{
		{"blocked content", "hack into a bank account"},
		{"too short", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/v1/ask", models.AskRequest{Question: tt.question})
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status: %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestAPI_AskEmptyQuestion(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/ask", models.AskRequest{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status: %d, want 400", resp.StatusCode)
	}
}

func TestAPI_FeedbackFlow(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/ask", models.AskRequest{Question: "How do you solve a quadratic equation?"})
	var askResponse models.AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&askResponse); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	fbResp := postJSON(t, server.URL+"/api/v1/feedback", models.FeedbackRequest{
		QuestionID:   askResponse.QuestionID,
		FeedbackType: "positive",
		UserComment:  "nice walkthrough",
	})
	defer fbResp.Body.Close()

	if fbResp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", fbResp.StatusCode)
	}

	var fb models.FeedbackResponse
	if err := json.NewDecoder(fbResp.Body).Decode(&fb); err != nil {
		t.Fatal(err)
	}
	if fb.Status != "processed" || fb.FeedbackID == "" {
		t.Errorf("feedback response: %+v", fb)
	}
}

func TestAPI_FeedbackUnknownQuestion(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/feedback", models.FeedbackRequest{
		QuestionID:   "q_unknown",
		FeedbackType: "negative",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: %d, want 404", resp.StatusCode)
	}
}

func TestAPI_Health(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatal(err)
	}
	if !health.Components["knowledge_base"] || !health.Components["web_search"] {
		t.Errorf("components: %v", health.Components)
	}
}

func TestAPI_KnowledgeBaseStats(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/knowledge-base/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var stats map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	if stats["status"] != "healthy" {
		t.Errorf("stats: %v", stats)
	}
}
