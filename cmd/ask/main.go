package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/setup"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/setup/logger"
)

func main() {
	// Setup logging
	serviceLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = serviceLogger

	jsonOutput := flag.Bool("json", false, "Print the full response as JSON")
	flag.Parse()

	question := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if question == "" {
		log.Fatal().Msg("Usage: ask [-json] <question>")
	}

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

	response, err := deps.Pipeline.Ask(ctx, question)
	if err != nil {
		log.Fatal().Err(err).Msg("Question failed")
	}

	if *jsonOutput {
		encoded, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode response")
		}
		fmt.Println(string(encoded))
		return
	}

	fmt.Println(response.Answer)
	fmt.Println()
	fmt.Printf("route: %s  confidence: %.2f  sources: %s\n",
		response.RouteUsed, response.Confidence, strings.Join(response.Sources, ", "))
}
