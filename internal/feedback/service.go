package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service records user feedback against previously answered questions.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Process validates that the question id refers to a known record,
// snapshots the original question and answer into the entry, and
// persists it. Unknown ids return ErrRecordNotFound.
func (s *Service) Process(ctx context.Context, questionID string, feedbackType string, comment string) (Entry, error) {
	record, err := s.store.GetRecord(ctx, questionID)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:           uuid.NewString(),
		QuestionID:   questionID,
		FeedbackType: feedbackType,
		UserComment:  comment,
		Question:     record.Question,
		Answer:       record.Answer,
		CreatedAt:    time.Now(),
	}

	if err := s.store.SaveEntry(ctx, entry); err != nil {
		return Entry{}, err
	}

	log.Info().
		Str("question_id", questionID).
		Str("feedback_type", feedbackType).
		Msg("Feedback recorded")

	return entry, nil
}
