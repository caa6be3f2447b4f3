package knowledge

import (
	"context"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/database"
	"github.com/SaiBalaji-2003/math-routing-agent/internal/embedding"
)

// Document is one stored answer with its retrieval metadata.
type Document struct {
	ID         string
	Question   string
	Answer     string
	Topic      string
	Difficulty string
}

// Match is one nearest-neighbor hit. Score is a similarity in [0, 1],
// 1 being an exact match.
type Match struct {
	Document Document
	Score    float64
}

// Index is the semantic store capability the knowledge client builds on:
// given text, return the nearest stored documents with similarity.
type Index interface {
	Add(ctx context.Context, docs []Document) error
	QueryNearest(ctx context.Context, text string, k int) ([]Match, error)
	Count(ctx context.Context) (int, error)
}

// PostgresIndex backs the semantic store with pgvector and an embedder.
type PostgresIndex struct {
	db       *database.DB
	embedder embedding.Embedder
	modelID  string
}

func NewPostgresIndex(db *database.DB, embedder embedding.Embedder, modelID string) *PostgresIndex {
	return &PostgresIndex{
		db:       db,
		embedder: embedder,
		modelID:  modelID,
	}
}

func (i *PostgresIndex) Add(ctx context.Context, docs []Document) error {
	for _, doc := range docs {
		// Embed the stored question so lookups match how users ask.
		embeddings, err := i.embedder.GenerateEmbeddings(ctx, doc.Question)
		if err != nil {
			return err
		}

		record := database.MathDocument{
			ID:         doc.ID,
			Question:   doc.Question,
			Answer:     doc.Answer,
			Topic:      doc.Topic,
			Difficulty: doc.Difficulty,
		}
		if err := i.db.InsertDocument(ctx, record, embeddings); err != nil {
			return err
		}
	}

	return nil
}

func (i *PostgresIndex) QueryNearest(ctx context.Context, text string, k int) ([]Match, error) {
	embeddings, err := i.embedder.GenerateEmbeddings(ctx, text)
	if err != nil {
		return nil, err
	}

	records, err := i.db.NearestDocuments(ctx, embeddings, k)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, record := range records {
		matches = append(matches, Match{
			Document: Document{
				ID:         record.ID,
				Question:   record.Question,
				Answer:     record.Answer,
				Topic:      record.Topic,
				Difficulty: record.Difficulty,
			},
			Score: distanceToScore(record.Distance),
		})
	}

	return matches, nil
}

func (i *PostgresIndex) Count(ctx context.Context) (int, error) {
	return i.db.CountDocuments(ctx)
}

func (i *PostgresIndex) ModelLabel() string {
	return i.modelID
}

// Cosine distance ranges 0 (identical) to 2 (opposite). Convert to a
// similarity score clamped to [0, 1].
func distanceToScore(distance float64) float64 {
	score := 1.0 - distance

	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}

	return score
}
