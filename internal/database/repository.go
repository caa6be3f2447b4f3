package database

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// MathDocument is one stored answer with its retrieval metadata.
type MathDocument struct {
	ID         string
	Question   string
	Answer     string
	Topic      string
	Difficulty string
	Distance   float64
}

// InsertDocument upserts one math document with its embedding.
func (db *DB) InsertDocument(ctx context.Context, doc MathDocument, embedding []float32) error {
	query := `
	INSERT INTO math_documents (id, question, answer, topic, difficulty, embedding)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE
	SET question = EXCLUDED.question,
	    answer = EXCLUDED.answer,
	    topic = EXCLUDED.topic,
	    difficulty = EXCLUDED.difficulty,
	    embedding = EXCLUDED.embedding`

	_, err := db.Pool.Exec(ctx, query,
		doc.ID, doc.Question, doc.Answer, doc.Topic, doc.Difficulty,
		pgvector.NewVector(embedding))
	if err != nil {
		return fmt.Errorf("failed to insert document %s: %w", doc.ID, err)
	}

	return nil
}

// NearestDocuments runs a cosine-distance nearest-neighbor query.
func (db *DB) NearestDocuments(ctx context.Context, queryEmbeddings []float32, limit int) ([]MathDocument, error) {
	pgvectorEmbeddings := pgvector.NewVector(queryEmbeddings)

	query := `
	SELECT
	  id,
	  question,
	  answer,
	  topic,
	  difficulty,
	  embedding <=> $1 AS distance
	FROM math_documents
	ORDER BY distance ASC
	LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, pgvectorEmbeddings, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to query the database: %w", err)
	}

	defer rows.Close()

	var docs []MathDocument
	for rows.Next() {
		var doc MathDocument

		if err := rows.Scan(&doc.ID, &doc.Question, &doc.Answer, &doc.Topic, &doc.Difficulty, &doc.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

func (db *DB) CountDocuments(ctx context.Context) (int, error) {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM math_documents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}
