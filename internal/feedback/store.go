package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/SaiBalaji-2003/math-routing-agent/internal/models"
)

var ErrRecordNotFound = errors.New("no record for question id")

// Record is the stored question→response pair feedback correlates
// against.
type Record struct {
	QuestionID string       `json:"question_id"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Route      models.Route `json:"route"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Entry is one piece of user feedback about a recorded answer.
type Entry struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"question_id"`
	FeedbackType string    `json:"feedback_type"`
	UserComment  string    `json:"user_comment,omitempty"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store keeps question records and feedback entries. Implementations:
// RedisStore (durable across process restarts for the key TTL) and
// MemoryStore (explicitly not durable).
type Store interface {
	SaveRecord(ctx context.Context, record Record) error
	GetRecord(ctx context.Context, questionID string) (Record, error)
	SaveEntry(ctx context.Context, entry Entry) error
}
