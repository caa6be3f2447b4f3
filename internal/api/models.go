package api

type HealthResponse struct {
	Status     string          `json:"status" description:"Service status"`
	Version    string          `json:"version" description:"API version"`
	Components map[string]bool `json:"components" description:"Per-component health"`
}

type SampleQuestionsResponse struct {
	KnowledgeBaseQuestions []string `json:"knowledge_base_questions"`
	WebSearchQuestions     []string `json:"web_search_questions"`
}
