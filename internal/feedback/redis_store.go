package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	recordKeyPrefix = "question_record:"
	entryKeyPrefix  = "feedback_entry:"
)

// RedisStore keeps records and feedback entries as JSON values with a
// configurable retention TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) SaveRecord(ctx context.Context, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := s.client.Set(ctx, recordKeyPrefix+record.QuestionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.QuestionID, err)
	}

	return nil
}

func (s *RedisStore) GetRecord(ctx context.Context, questionID string) (Record, error) {
	data, err := s.client.Get(ctx, recordKeyPrefix+questionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrRecordNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to read record %s: %w", questionID, err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal record %s: %w", questionID, err)
	}

	return record, nil
}

func (s *RedisStore) SaveEntry(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback entry: %w", err)
	}

	// Entries are kept without expiry so feedback survives for offline
	// analysis even after the correlated record ages out.
	if err := s.client.Set(ctx, entryKeyPrefix+entry.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save feedback entry %s: %w", entry.ID, err)
	}

	return nil
}
