package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/api/middleware"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/feedback"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/pipeline"
)

// KnowledgeStats is the slice of the knowledge store the API exposes.
type KnowledgeStats interface {
	IsHealthy(ctx context.Context) bool
	Stats(ctx context.Context) map[string]any
}

// WebSearchStatus reports the web client's health for the health endpoint.
type WebSearchStatus interface {
	IsHealthy() bool
}

type Handler struct {
	pipeline  *pipeline.Pipeline
	feedback  *feedback.Service
	knowledge KnowledgeStats
	webSearch WebSearchStatus
}

func NewHandler(p *pipeline.Pipeline, fb *feedback.Service, knowledge KnowledgeStats, webSearch WebSearchStatus) *Handler {
	return &Handler{
		pipeline:  p,
		feedback:  fb,
		knowledge: knowledge,
		webSearch: webSearch,
	}
}

// Ask handles POST /api/v1/ask
func (h *Handler) Ask(req *restful.Request, resp *restful.Response) {
	var askRequest models.AskRequest

	if err := req.ReadEntity(&askRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := askRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	log.Info().
		Str("question", askRequest.Question).
		Str("user_id", askRequest.UserID).
		Msg("Process question")

	ctx := req.Request.Context()

	askResponse, err := h.pipeline.Ask(ctx, askRequest.Question)
	if errors.Is(err, pipeline.ErrQuestionRejected) {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to answer question")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, askResponse)
}

// Feedback handles POST /api/v1/feedback
func (h *Handler) Feedback(req *restful.Request, resp *restful.Response) {
	var feedbackRequest models.FeedbackRequest

	if err := req.ReadEntity(&feedbackRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse feedback body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := feedbackRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()

	entry, err := h.feedback.Process(ctx, feedbackRequest.QuestionID, feedbackRequest.FeedbackType, feedbackRequest.UserComment)
	if errors.Is(err, feedback.ErrRecordNotFound) {
		middleware.HandleError(resp, err, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to process feedback")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, models.FeedbackResponse{
		Status:     "processed",
		FeedbackID: entry.ID,
	})
}

// Health handles GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()

	healthResponse := HealthResponse{
		Status:  "healthy",
		Version: "1.0.0",
		Components: map[string]bool{
			"knowledge_base": h.knowledge.IsHealthy(ctx),
			"web_search":     h.webSearch.IsHealthy(),
		},
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// KnowledgeBaseStats handles GET /api/v1/knowledge-base/stats
func (h *Handler) KnowledgeBaseStats(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.knowledge.Stats(req.Request.Context()))
}

// SampleQuestions handles GET /api/v1/sample-questions
func (h *Handler) SampleQuestions(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, SampleQuestionsResponse{
		KnowledgeBaseQuestions: []string{
			"What is the derivative of x²?",
			"How do you solve a quadratic equation?",
			"What is the Pythagorean theorem?",
		},
		WebSearchQuestions: []string{
			"Latest developments in quantum computing mathematics",
			"Recent mathematical proofs in number theory",
			"Modern applications of calculus in AI",
		},
	})
}
