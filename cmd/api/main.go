package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/api"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/api/middleware"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/setup"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/setup/logger"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Math Routing Agent API",
			Description: "Agentic-RAG Mathematical Professor System",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "ask", Description: "Question answering"}},
		{TagProps: spec.TagProps{Name: "feedback", Description: "Answer feedback"}},
		{TagProps: spec.TagProps{Name: "knowledge-base", Description: "Knowledge base operations"}},
	}
}

func main() {
	// Setup logging
	serviceLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = serviceLogger

	log.Info().Msg("Starting Math Routing Agent API Server")

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()
	cfg := setup.LoadConfig()

	deps, err := setup.Wire(ctx, cfg, &serviceLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	if deps.DB != nil {
		defer deps.DB.Close()
	}

	handler := api.NewHandler(deps.Pipeline, deps.FeedbackService, deps.Knowledge, deps.WebSearch)

	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	openAPIConfig := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(openAPIConfig))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Msg("Starting server")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
