package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/feedback"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/guardrails"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
	"github.com/rs/zerolog"
)

// ErrQuestionRejected marks input-validation failures. These are client
// errors and are never retried.
var ErrQuestionRejected = errors.New("question rejected by input validation")

// Classifier picks the answer source for a validated question.
type Classifier interface {
	Classify(question string) models.RouteDecision
}

// AnswerSource produces a retrieval result for a question. Sources never
// return errors: degraded lookups yield zero-confidence results.
type AnswerSource interface {
	Answer(ctx context.Context, question string) models.RetrievalResult
}

// Recorder stores question→response records for feedback correlation.
type Recorder interface {
	SaveRecord(ctx context.Context, record feedback.Record) error
}

// Pipeline composes validation, routing, retrieval and output cleanup
// into one request→answer flow. Each Ask invocation is independent; no
// state is shared across requests.
type Pipeline struct {
	input      *guardrails.InputValidator
	output     *guardrails.OutputValidator
	classifier Classifier
	knowledge  AnswerSource
	webSearch  AnswerSource
	recorder   Recorder
	logger     *zerolog.Logger
}

func New(
	input *guardrails.InputValidator,
	output *guardrails.OutputValidator,
	classifier Classifier,
	knowledge AnswerSource,
	webSearch AnswerSource,
	recorder Recorder,
	logger *zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		input:      input,
		output:     output,
		classifier: classifier,
		knowledge:  knowledge,
		webSearch:  webSearch,
		recorder:   recorder,
		logger:     logger,
	}
}

// Ask runs the full pipeline for one question.
func (p *Pipeline) Ask(ctx context.Context, question string) (models.AskResponse, error) {
	validation := p.input.Validate(question)
	if !validation.IsValid {
		p.logger.Info().
			Str("category", validation.Category).
			Str("reason", validation.Reason).
			Msg("Question rejected")
		return models.AskResponse{}, fmt.Errorf("%w: %s", ErrQuestionRejected, validation.Reason)
	}

	decision := p.classifier.Classify(question)

	var result models.RetrievalResult
	switch decision.Route {
	case models.RouteKnowledgeBase:
		result = p.knowledge.Answer(ctx, question)
	default:
		result = p.webSearch.Answer(ctx, question)
	}

	answer := p.output.Validate(result.Answer)

	response := models.AskResponse{
		Answer:     answer,
		RouteUsed:  decision.Route,
		Confidence: result.Confidence,
		Sources:    result.Sources,
		Timestamp:  time.Now(),
		QuestionID: newQuestionID(),
	}

	p.saveRecord(ctx, question, response)

	p.logger.Info().
		Str("question_id", response.QuestionID).
		Str("route", string(response.RouteUsed)).
		Float64("confidence", response.Confidence).
		Msg("Question answered")

	return response, nil
}

// A record-save failure never fails the request; feedback for this
// question simply won't correlate.
func (p *Pipeline) saveRecord(ctx context.Context, question string, response models.AskResponse) {
	if p.recorder == nil {
		return
	}

	record := feedback.Record{
		QuestionID: response.QuestionID,
		Question:   question,
		Answer:     response.Answer,
		Route:      response.RouteUsed,
		CreatedAt:  response.Timestamp,
	}
	if err := p.recorder.SaveRecord(ctx, record); err != nil {
		p.logger.Warn().Err(err).Str("question_id", response.QuestionID).Msg("Failed to save question record")
	}
}

// Question IDs come from a time-based source so they sort by arrival
// and never collide in practice within one process.
func newQuestionID() string {
	return fmt.Sprintf("q_%d", time.Now().UnixNano())
}
