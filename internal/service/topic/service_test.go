package topic

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/heartmarshall/dailydose-backend/internal/adapter/kv/memory"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// failingStore wraps a Store and fails Update and Get with err.
type failingStore struct {
	kvstore.Store
	err error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Update(context.Context, string, kvstore.UpdateFunc) error {
	return f.err
}

func newTestService(t *testing.T, store kvstore.Store) *Service {
	t.Helper()
	return NewService(slog.Default(), store)
}

// ---------------------------------------------------------------------------
// AddTopic
// ---------------------------------------------------------------------------

func TestAddTopic_AppendsInOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	ctx := context.Background()

	for _, name := range []string{"Go", "  Rust  ", "SQL"} {
		if _, err := svc.AddTopic(ctx, AddTopicInput{Name: name}); err != nil {
			t.Fatalf("AddTopic(%q): %v", name, err)
		}
	}

	got, err := svc.ListTopics(ctx)
	if err != nil {
		t.Fatalf("ListTopics: %v", err)
	}
	want := []string{"Go", "Rust", "SQL"}
	if !slices.Equal(got, want) {
		t.Errorf("topics: got %v, want %v", got, want)
	}
}

func TestAddTopic_Duplicate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	ctx := context.Background()

	if _, err := svc.AddTopic(ctx, AddTopicInput{Name: "Go"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.AddTopic(ctx, AddTopicInput{Name: " Go"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAddTopic_NormalizesWhitespace(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	ctx := context.Background()

	got, err := svc.AddTopic(ctx, AddTopicInput{Name: " Machine \t  Learning "})
	if err != nil {
		t.Fatalf("AddTopic: %v", err)
	}
	if !slices.Equal(got, []string{"Machine Learning"}) {
		t.Fatalf("topics: got %q", got)
	}

	_, err = svc.AddTopic(ctx, AddTopicInput{Name: "Machine  Learning"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestAddTopic_CaseSensitive(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	ctx := context.Background()

	_, _ = svc.AddTopic(ctx, AddTopicInput{Name: "go"})
	topics, err := svc.AddTopic(ctx, AddTopicInput{Name: "Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 2 {
		t.Errorf("topics: got %v, want 2 entries", topics)
	}
}

func TestAddTopic_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", strings.Repeat("x", MaxTopicNameLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, memory.New())
			_, err := svc.AddTopic(context.Background(), AddTopicInput{Name: tt.input})
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAddTopic_MaxLengthAllowed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	name := strings.Repeat("я", MaxTopicNameLength)
	if _, err := svc.AddTopic(context.Background(), AddTopicInput{Name: name}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddTopic_LimitReached(t *testing.T) {
	t.Parallel()

	store := memory.New()
	ctx := context.Background()
	full := make([]string, MaxTopics)
	for i := range full {
		full[i] = "topic-" + strings.Repeat("a", i+1)
	}
	if err := kvstore.SetJSON(ctx, store, kvstore.KeyTopics, full); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTestService(t, store)
	_, err := svc.AddTopic(ctx, AddTopicInput{Name: "one more"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAddTopic_StoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("disk full")
	svc := newTestService(t, failingStore{Store: memory.New(), err: storeErr})

	_, err := svc.AddTopic(context.Background(), AddTopicInput{Name: "Go"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// RemoveTopic
// ---------------------------------------------------------------------------

func TestRemoveTopic_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		_, _ = svc.AddTopic(ctx, AddTopicInput{Name: name})
	}

	topics, err := svc.RemoveTopic(ctx, RemoveTopicInput{Name: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(topics, []string{"A", "C"}) {
		t.Errorf("topics: got %v, want [A C]", topics)
	}
}

func TestRemoveTopic_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	_, err := svc.RemoveTopic(context.Background(), RemoveTopicInput{Name: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveTopic_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	_, err := svc.RemoveTopic(context.Background(), RemoveTopicInput{Name: " "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRemoveTopic_KeepsHistory(t *testing.T) {
	t.Parallel()

	store := memory.New()
	ctx := context.Background()
	svc := newTestService(t, store)
	_, _ = svc.AddTopic(ctx, AddTopicInput{Name: "Go"})
	if err := kvstore.SetJSON(ctx, store, kvstore.HistoryKey("Go"), []string{"abc"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.RemoveTopic(ctx, RemoveTopicInput{Name: "Go"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, kvstore.HistoryKey("Go")); err != nil {
		t.Errorf("history should survive removal: %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListTopics / Suggestions
// ---------------------------------------------------------------------------

func TestListTopics_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	topics, err := svc.ListTopics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topics == nil || len(topics) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", topics)
	}
}

func TestListTopics_CorruptValueTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	store := memory.New()
	ctx := context.Background()
	if err := store.Set(ctx, kvstore.KeyTopics, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTestService(t, store)
	topics, err := svc.ListTopics(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("expected empty, got %v", topics)
	}

	// A write after corruption starts from an empty set.
	topics, err = svc.AddTopic(ctx, AddTopicInput{Name: "Go"})
	if err != nil {
		t.Fatalf("AddTopic: %v", err)
	}
	if !slices.Equal(topics, []string{"Go"}) {
		t.Errorf("topics: got %v", topics)
	}
}

func TestListTopics_StoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection refused")
	svc := newTestService(t, failingStore{Store: memory.New(), err: storeErr})
	_, err := svc.ListTopics(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSuggestions_ExcludesExisting(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memory.New())
	ctx := context.Background()
	_, _ = svc.AddTopic(ctx, AddTopicInput{Name: "Python"})

	got, err := svc.Suggestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(got, "Python") {
		t.Errorf("suggestions should not contain an existing topic: %v", got)
	}
	if len(got) != len(SuggestedTopics)-1 {
		t.Errorf("suggestions: got %d, want %d", len(got), len(SuggestedTopics)-1)
	}
}
