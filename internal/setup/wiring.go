package setup

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	appconfig "github.com/SaiBalaji-2003/math-routing-agent/internal/config"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/database"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/embedding"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/feedback"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/guardrails"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/knowledge"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/pipeline"
	appredis "github.com/SaiBalaji-2003/math-routing-agent/internal/redis"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/router"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/websearch"
)

type Config struct {
	Port string

	TavilyAPIKey string

	AWSRegion        string
	EmbeddingModelID string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDatabase string
	PostgresSSLMode  string

	RedisAddr     string
	RedisPassword string
	RecordTTL     time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("MATH_AGENT_API_PORT", "8080"),
		TavilyAPIKey:     getEnv("TAVILY_API_KEY", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		EmbeddingModelID: getEnv("EMBEDDING_MODEL_ID", embedding.DefaultModelID),
		PostgresHost:     getEnv("POSTGRES_HOST", ""),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDatabase: getEnv("POSTGRES_DB", "math_agent"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RecordTTL:        getEnvDuration("RECORD_TTL", 24*time.Hour),
	}
}

type Dependencies struct {
	Pipeline        *pipeline.Pipeline
	FeedbackService *feedback.Service
	Knowledge       *knowledge.Store
	WebSearch       *websearch.Client
	DB              *database.DB
}

// Wire builds the full component graph. Missing collaborators degrade
// instead of failing: no Postgres means the in-memory index, no Redis
// means the in-memory record store, no Tavily key means simulated search.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	routingConfig, err := appconfig.LoadRoutingConfig()
	if err != nil {
		return nil, err
	}

	index, db, modelLabel := buildIndex(ctx, cfg, logger)
	knowledgeStore := knowledge.NewStore(index, modelLabel)
	if err := knowledgeStore.Initialize(ctx); err != nil {
		// Startup continues with a degraded store; every lookup will
		// return a zero-confidence result until it is reinitialized.
		logger.Error().Err(err).Msg("Failed to initialize knowledge base")
	}

	webClient := websearch.NewClient(cfg.TavilyAPIKey)
	webClient.Initialize()

	recordStore := buildRecordStore(ctx, cfg, logger)

	p := pipeline.New(
		guardrails.NewInputValidator(),
		guardrails.NewOutputValidator(),
		router.NewKeywordClassifier(routingConfig),
		knowledgeStore,
		webClient,
		recordStore,
		logger,
	)

	return &Dependencies{
		Pipeline:        p,
		FeedbackService: feedback.NewService(recordStore),
		Knowledge:       knowledgeStore,
		WebSearch:       webClient,
		DB:              db,
	}, nil
}

func buildIndex(ctx context.Context, cfg *Config, logger *zerolog.Logger) (knowledge.Index, *database.DB, string) {
	if cfg.PostgresHost == "" {
		logger.Warn().Msg("POSTGRES_HOST not set, knowledge base uses the in-memory index")
		return knowledge.NewMemoryIndex(), nil, "lexical-overlap (in-memory)"
	}

	db, err := database.New(ctx, database.Config{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		Database: cfg.PostgresDatabase,
		SSLMode:  cfg.PostgresSSLMode,
	})
	if err == nil {
		err = db.Ping(ctx)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Postgres unavailable, knowledge base uses the in-memory index")
		return knowledge.NewMemoryIndex(), nil, "lexical-overlap (in-memory)"
	}

	embedder, err := embedding.NewBedrockEmbedder(ctx, cfg.AWSRegion, cfg.EmbeddingModelID)
	if err != nil {
		logger.Error().Err(err).Msg("Bedrock embedder unavailable, knowledge base uses the in-memory index")
		db.Close()
		return knowledge.NewMemoryIndex(), nil, "lexical-overlap (in-memory)"
	}

	return knowledge.NewPostgresIndex(db, embedder, cfg.EmbeddingModelID), db, cfg.EmbeddingModelID
}

func buildRecordStore(ctx context.Context, cfg *Config, logger *zerolog.Logger) feedback.Store {
	if cfg.RedisAddr == "" {
		logger.Warn().Msg("REDIS_ADDR not set, question records are kept in memory only")
		return feedback.NewMemoryStore()
	}

	redisClient, err := appredis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
	if err != nil {
		logger.Error().Err(err).Msg("Redis unavailable, question records are kept in memory only")
		return feedback.NewMemoryStore()
	}

	return feedback.NewRedisStore(redisClient, cfg.RecordTTL)
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
