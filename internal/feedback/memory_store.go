package feedback

import (
	"context"
	"sync"
)

// MemoryStore is the in-process fallback when Redis is not configured.
// Nothing survives a restart; deployments that need durable feedback
// must wire the Redis store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

func (s *MemoryStore) SaveRecord(ctx context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.QuestionID] = record
	return nil
}

func (s *MemoryStore) GetRecord(ctx context.Context, questionID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[questionID]
	if !ok {
		return Record{}, ErrRecordNotFound
	}

	return record, nil
}

func (s *MemoryStore) SaveEntry(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of the recorded feedback, oldest first.
func (s *MemoryStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
