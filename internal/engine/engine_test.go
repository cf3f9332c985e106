package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"trainer-service/internal/models"
)

// fakeStore is an in-memory Store for engine tests. afterGetState, when
// set, runs after each flashcard state read; question fetches are recorded
// in questionFetches.
type fakeStore struct {
	mu              sync.Mutex
	attempts        []models.Attempt
	questions       []models.Question
	recent          map[string]bool
	states          map[string]*models.FlashcardReviewState
	failOp          string
	afterGetState   func()
	questionFetches [][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recent: map[string]bool{},
		states: map[string]*models.FlashcardReviewState{},
	}
}

func (f *fakeStore) fail(op string) error {
	if f.failOp == op {
		return fmt.Errorf("simulated %s failure", op)
	}
	return nil
}

func (f *fakeStore) GetAttempts(ctx context.Context, userID string) ([]models.Attempt, error) {
	if err := f.fail("attempts"); err != nil {
		return nil, err
	}
	var out []models.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) SaveAttempt(ctx context.Context, attempt *models.Attempt) error {
	if err := f.fail("save_attempt"); err != nil {
		return err
	}
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeStore) GetCandidateQuestions(ctx context.Context, subjects []string) ([]models.Question, error) {
	if err := f.fail("questions"); err != nil {
		return nil, err
	}
	f.questionFetches = append(f.questionFetches, subjects)
	if len(subjects) == 0 {
		return f.questions, nil
	}
	set := map[string]bool{}
	for _, s := range subjects {
		set[s] = true
	}
	var out []models.Question
	for _, q := range f.questions {
		if set[q.Subject] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeStore) GetQuestion(ctx context.Context, questionID string) (*models.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == questionID {
			return &f.questions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetRecentSessionQuestionIDs(ctx context.Context, userID string, sessions int) (map[string]bool, error) {
	if err := f.fail("recent"); err != nil {
		return nil, err
	}
	return f.recent, nil
}

func (f *fakeStore) GetFlashcardState(ctx context.Context, userID, cardID string) (*models.FlashcardReviewState, error) {
	if err := f.fail("flashcard"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	st, ok := f.states[userID+"|"+cardID]
	var cp *models.FlashcardReviewState
	if ok {
		c := *st
		cp = &c
	}
	f.mu.Unlock()
	if f.afterGetState != nil {
		f.afterGetState()
	}
	return cp, nil
}

func (f *fakeStore) GetFlashcardStates(ctx context.Context, userID string) ([]models.FlashcardReviewState, error) {
	if err := f.fail("flashcards"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.FlashcardReviewState
	for _, st := range f.states {
		if st.UserID == userID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (f *fakeStore) SaveFlashcardState(ctx context.Context, state *models.FlashcardReviewState, prevReviewCount int) (bool, error) {
	if err := f.fail("save_flashcard"); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	current := 0
	if st, ok := f.states[state.UserID+"|"+state.CardID]; ok {
		current = st.ReviewCount
	}
	if current != prevReviewCount {
		return false, nil
	}
	cp := *state
	f.states[state.UserID+"|"+state.CardID] = &cp
	return true, nil
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, store Store, cfg *Config) *Engine {
	t.Helper()
	e, err := New(store, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.now = func() time.Time { return testNow }
	e.rand = rand.New(rand.NewSource(42))
	return e
}

func question(id, subject string, chapter int) models.Question {
	return models.Question{
		ID:           id,
		Subject:      subject,
		Chapter:      chapter,
		ChapterTitle: fmt.Sprintf("%s ch %d", subject, chapter),
	}
}

func attempt(userID, questionID, subject string, chapter int, correct bool, answeredAt time.Time) models.Attempt {
	return models.Attempt{
		UserID:     userID,
		QuestionID: questionID,
		Subject:    subject,
		Chapter:    chapter,
		Correct:    correct,
		AnsweredAt: answeredAt,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinTopicWeight = 0

	_, err := New(newFakeStore(), cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRecordAttemptReturnsUpdatedAggregate(t *testing.T) {
	store := newFakeStore()
	e := newTestEngine(t, store, nil)

	for i := 0; i < 3; i++ {
		a := attempt("u1", "q1", "biology", 4, i == 0, testNow.Add(time.Duration(i)*time.Minute))
		st, err := e.RecordAttempt(context.Background(), &a)
		if err != nil {
			t.Fatalf("RecordAttempt: %v", err)
		}
		if st.Total != i+1 {
			t.Errorf("after attempt %d: total = %d, want %d", i+1, st.Total, i+1)
		}
	}

	st, err := e.RecordAttempt(context.Background(), &models.Attempt{
		UserID: "u1", QuestionID: "q2", Subject: "biology", Chapter: 4, Correct: true,
	})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if st.Total != 4 || st.Correct != 2 {
		t.Errorf("aggregate = %d/%d, want 2/4", st.Correct, st.Total)
	}
	if st.DaysSinceLast != 0 {
		t.Errorf("DaysSinceLast = %v, want 0 for just-written attempt", st.DaysSinceLast)
	}
}

func TestRecordAttemptStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.failOp = "save_attempt"
	e := newTestEngine(t, store, nil)

	a := attempt("u1", "q1", "physics", 1, true, testNow)
	_, err := e.RecordAttempt(context.Background(), &a)

	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if len(store.attempts) != 0 {
		t.Error("failed save must not leave a record behind")
	}
}

func TestComputeTopicWeightsWrapsStorageError(t *testing.T) {
	store := newFakeStore()
	store.failOp = "attempts"
	e := newTestEngine(t, store, nil)

	_, err := e.ComputeTopicWeights(context.Background(), "u1")
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestWeakTopicsOrderingAndMinAttempts(t *testing.T) {
	store := newFakeStore()
	base := testNow.Add(-time.Hour)
	// chem ch1: 1/3 correct, bio ch2: 3/3 correct, physics ch5: only 2 attempts.
	for i, correct := range []bool{true, false, false} {
		store.attempts = append(store.attempts, attempt("u1", fmt.Sprintf("c%d", i), "chemistry", 1, correct, base))
	}
	for i := 0; i < 3; i++ {
		store.attempts = append(store.attempts, attempt("u1", fmt.Sprintf("b%d", i), "biology", 2, true, base))
	}
	store.attempts = append(store.attempts,
		attempt("u1", "p0", "physics", 5, false, base),
		attempt("u1", "p1", "physics", 5, false, base),
	)

	e := newTestEngine(t, store, nil)
	topics, err := e.WeakTopics(context.Background(), "u1", 3, 5)
	if err != nil {
		t.Fatalf("WeakTopics: %v", err)
	}

	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2 (physics has too few attempts)", len(topics))
	}
	if topics[0].Subject != "chemistry" {
		t.Errorf("weakest topic = %s, want chemistry", topics[0].Subject)
	}
	if topics[1].Subject != "biology" {
		t.Errorf("second topic = %s, want biology", topics[1].Subject)
	}
}
