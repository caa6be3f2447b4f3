package knowledge

import (
	"context"
	"fmt"
	"time"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	// The index's own similarity score would be the more correct signal
	// here; a constant is a known simplification carried over from the
	// reference behavior.
	matchConfidence = 0.9

	sourceLabel = "Knowledge Base"
)

// Store answers questions from the semantic index. Lookup failures are
// converted into zero-confidence results; they never reach the caller
// as errors.
type Store struct {
	index       Index
	modelLabel  string
	initialized bool
	lastUpdated time.Time
}

func NewStore(index Index, modelLabel string) *Store {
	return &Store{
		index:      index,
		modelLabel: modelLabel,
	}
}

// Initialize seeds the corpus into an empty index. Idempotent, meant to
// run once at process start; callers log the error and continue with a
// degraded (not ready) store rather than aborting startup.
func (s *Store) Initialize(ctx context.Context) error {
	if s.initialized {
		return nil
	}
	if s.index == nil {
		return fmt.Errorf("knowledge store has no index configured")
	}

	count, err := s.index.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect knowledge index: %w", err)
	}

	if count == 0 {
		corpus := SeedCorpus()
		if err := s.index.Add(ctx, corpus); err != nil {
			return fmt.Errorf("failed to seed knowledge index: %w", err)
		}
		log.Info().Int("documents", len(corpus)).Msg("Seeded knowledge base")
	}

	s.initialized = true
	s.lastUpdated = time.Now()
	log.Info().Str("embedding_model", s.modelLabel).Msg("Knowledge base initialized")

	return nil
}

// Answer performs a nearest-neighbor lookup for the single best match.
func (s *Store) Answer(ctx context.Context, question string) models.RetrievalResult {
	if !s.initialized {
		return models.RetrievalResult{
			Answer:     "Knowledge base not initialized",
			Confidence: 0.0,
			Sources:    []string{},
			Metadata:   map[string]string{},
		}
	}

	matches, err := s.index.QueryNearest(ctx, question, 1)
	if err != nil {
		log.Error().Err(err).Msg("Error retrieving from knowledge base")
		return models.RetrievalResult{
			Answer:     fmt.Sprintf("Error accessing knowledge base: %s", err),
			Confidence: 0.0,
			Sources:    []string{},
			Metadata:   map[string]string{},
		}
	}

	if len(matches) == 0 {
		return models.RetrievalResult{
			Answer:     "No relevant information found in knowledge base",
			Confidence: 0.0,
			Sources:    []string{},
			Metadata:   map[string]string{},
		}
	}

	best := matches[0]
	return models.RetrievalResult{
		Answer:     best.Document.Answer,
		Confidence: matchConfidence,
		Sources:    []string{sourceLabel},
		Metadata: map[string]string{
			"question":   best.Document.Question,
			"topic":      best.Document.Topic,
			"difficulty": best.Document.Difficulty,
		},
	}
}

// IsHealthy reports whether the store is initialized and non-empty.
func (s *Store) IsHealthy(ctx context.Context) bool {
	if !s.initialized {
		return false
	}

	count, err := s.index.Count(ctx)
	if err != nil {
		return false
	}

	return count > 0
}

func (s *Store) Stats(ctx context.Context) map[string]any {
	if !s.initialized {
		return map[string]any{"error": "Knowledge base not initialized"}
	}

	count, err := s.index.Count(ctx)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	status := "healthy"
	if count == 0 {
		status = "empty"
	}

	return map[string]any{
		"total_documents": count,
		"status":          status,
		"embedding_model": s.modelLabel,
		"last_updated":    s.lastUpdated.Format(time.RFC3339),
	}
}
