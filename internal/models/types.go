package models

import (
	"time"
)

type Route string

const (
	RouteKnowledgeBase Route = "knowledge_base"
	RouteWebSearch     Route = "web_search"
)

// RouteDecision is produced once per question by the classifier and
// consumed by the pipeline to pick a retrieval path.
type RouteDecision struct {
	Route      Route   `json:"route"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
	KBScore    int     `json:"kb_score"`
	WebScore   int     `json:"web_score"`
}

// RetrievalResult is the output of exactly one answer source.
// Contract: confidence 0.0 always comes with empty sources; a result
// claiming sources with zero confidence (or the reverse) is a client bug.
type RetrievalResult struct {
	Answer     string            `json:"answer"`
	Confidence float64           `json:"confidence"`
	Sources    []string          `json:"sources"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SearchSnippet is one raw search hit, ordered by descending score.
// Lives only within a single web search invocation.
type SearchSnippet struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
}

// Input message

type AskRequest struct {
	Question  string `json:"question" description:"The mathematics question to answer"`
	UserID    string `json:"user_id,omitempty" description:"Optional user identifier"`
	SessionID string `json:"session_id,omitempty" description:"Optional session identifier"`
}

type AskResponse struct {
	Answer     string    `json:"answer" description:"Validated answer text"`
	RouteUsed  Route     `json:"route_used" description:"Answer source that produced the response"`
	Confidence float64   `json:"confidence_score" description:"Heuristic source confidence (0.0-1.0)"`
	Sources    []string  `json:"sources" description:"Source identifiers"`
	Timestamp  time.Time `json:"timestamp"`
	QuestionID string    `json:"question_id" description:"Identifier for feedback correlation"`
}

const maxQuestionLength = 1000

func (r *AskRequest) Validate() error {
	if r.Question == "" {
		return ErrEmptyQuestion
	}
	if len(r.Question) > maxQuestionLength {
		return ErrQuestionTooLong
	}
	return nil
}

type FeedbackRequest struct {
	QuestionID   string `json:"question_id"`
	FeedbackType string `json:"feedback_type" description:"positive, negative or correction"`
	UserComment  string `json:"user_comment,omitempty"`
}

func (r *FeedbackRequest) Validate() error {
	if r.QuestionID == "" {
		return ErrEmptyQuestionID
	}
	if r.FeedbackType == "" {
		return ErrEmptyFeedbackType
	}
	return nil
}

type FeedbackResponse struct {
	Status     string `json:"status"`
	FeedbackID string `json:"feedback_id"`
}
