package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/api/middleware"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/ask").
			To(handler.Ask).
			Doc("Answer a mathematics question").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ask"}).
			Reads(models.AskRequest{}).
			Writes(models.AskResponse{}).
			Returns(200, "OK", models.AskResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/feedback").
			To(handler.Feedback).
			Doc("Record feedback for an answered question").
			Metadata(restfulspec.KeyOpenAPITags, []string{"feedback"}).
			Reads(models.FeedbackRequest{}).
			Writes(models.FeedbackResponse{}).
			Returns(200, "OK", models.FeedbackResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Unknown Question", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/sample-questions").
			To(handler.SampleQuestions).
			Doc("Sample questions for each route").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ask"}).
			Writes(SampleQuestionsResponse{}).
			Returns(200, "OK", SampleQuestionsResponse{}))

	ws.
		Route(ws.GET("/knowledge-base/stats").
			To(handler.KnowledgeBaseStats).
			Doc("Knowledge base statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"knowledge-base"}).
			Returns(200, "OK", map[string]any{}))

	container.Add(ws)
}
