package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// failingIndex always errors, to exercise the degraded paths.
type failingIndex struct{}

func (failingIndex) Add(ctx context.Context, docs []Document) error { return errors.New("add failed") }
func (failingIndex) QueryNearest(ctx context.Context, text string, k int) ([]Match, error) {
	return nil, errors.New("index unavailable")
}
func (failingIndex) Count(ctx context.Context) (int, error) { return 0, errors.New("count failed") }

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(NewMemoryIndex(), "lexical-overlap (in-memory)")
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return store
}

func TestStore_AnswerUninitialized(t *testing.T) {
	store := NewStore(NewMemoryIndex(), "test")

	got := store.Answer(context.Background(), "What is the derivative of x²?")
	if got.Confidence != 0.0 {
		t.Errorf("Confidence: %v, want 0.0", got.Confidence)
	}
	if !strings.Contains(got.Answer, "not initialized") {
		t.Errorf("Answer: %q, want explicit not-initialized message", got.Answer)
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources: %v, want empty", got.Sources)
	}
}

func TestStore_InitializeSeedsEmptyIndex(t *testing.T) {
	ctx := context.Background()
	index := NewMemoryIndex()
	store := NewStore(index, "test")

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	count, err := index.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != len(SeedCorpus()) {
		t.Errorf("document count: %d, want %d", count, len(SeedCorpus()))
	}

	// Idempotent: a second call must not duplicate the corpus.
	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	count, _ = index.Count(ctx)
	if count != len(SeedCorpus()) {
		t.Errorf("document count after re-init: %d, want %d", count, len(SeedCorpus()))
	}
}

func TestStore_AnswerFindsSeededDerivative(t *testing.T) {
	store := newSeededStore(t)

	got := store.Answer(context.Background(), "What is the derivative of x²?")
	if got.Confidence != matchConfidence {
		t.Errorf("Confidence: %v, want %v", got.Confidence, matchConfidence)
	}
	if !strings.Contains(got.Answer, "power rule") {
		t.Errorf("Answer: %q, want the seeded power rule solution", got.Answer)
	}
	if len(got.Sources) != 1 || got.Sources[0] != sourceLabel {
		t.Errorf("Sources: %v", got.Sources)
	}
	if got.Metadata["topic"] != "calculus" {
		t.Errorf("Metadata: %v", got.Metadata)
	}
}

func TestStore_AnswerNoMatch(t *testing.T) {
	store := newSeededStore(t)

	got := store.Answer(context.Background(), "zzzz qqqq wwww")
	if got.Confidence != 0.0 {
		t.Errorf("Confidence: %v, want 0.0", got.Confidence)
	}
	if !strings.Contains(got.Answer, "No relevant information") {
		t.Errorf("Answer: %q", got.Answer)
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources: %v, want empty", got.Sources)
	}
}

func TestStore_AnswerConvertsLookupErrors(t *testing.T) {
	store := NewStore(failingIndex{}, "test")
	// Force the initialized state the hard way: Initialize cannot
	// succeed against a failing index.
	store.initialized = true

	got := store.Answer(context.Background(), "What is a limit?")
	if got.Confidence != 0.0 {
		t.Errorf("Confidence: %v, want 0.0", got.Confidence)
	}
	if !strings.Contains(got.Answer, "index unavailable") {
		t.Errorf("Answer: %q, want the lookup error text", got.Answer)
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources: %v, want empty", got.Sources)
	}
}

func TestStore_InitializeFailureLeavesStoreDegraded(t *testing.T) {
	store := NewStore(failingIndex{}, "test")

	if err := store.Initialize(context.Background()); err == nil {
		t.Fatal("expected Initialize to fail")
	}
	if store.IsHealthy(context.Background()) {
		t.Error("store should not be healthy after failed init")
	}

	got := store.Answer(context.Background(), "What is the derivative of x²?")
	if got.Confidence != 0.0 || len(got.Sources) != 0 {
		t.Errorf("degraded store should return zero-confidence result, got %+v", got)
	}
}

func TestStore_HealthAndStats(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryIndex(), "lexical-overlap (in-memory)")

	if store.IsHealthy(ctx) {
		t.Error("uninitialized store must not be healthy")
	}
	if _, ok := store.Stats(ctx)["error"]; !ok {
		t.Error("uninitialized stats must carry an error entry")
	}

	if err := store.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	if !store.IsHealthy(ctx) {
		t.Error("seeded store must be healthy")
	}

	stats := store.Stats(ctx)
	if stats["status"] != "healthy" {
		t.Errorf("status: %v", stats["status"])
	}
	if stats["total_documents"] != len(SeedCorpus()) {
		t.Errorf("total_documents: %v", stats["total_documents"])
	}
	if stats["embedding_model"] != "lexical-overlap (in-memory)" {
		t.Errorf("embedding_model: %v", stats["embedding_model"])
	}
}
