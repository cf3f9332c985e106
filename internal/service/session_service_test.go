package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trainer-service/internal/engine"
	"trainer-service/internal/models"
)

// svcStore is a minimal in-memory engine.Store for service tests.
type svcStore struct {
	attempts []models.Attempt
}

func (f *svcStore) GetAttempts(ctx context.Context, userID string) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *svcStore) SaveAttempt(ctx context.Context, attempt *models.Attempt) error {
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *svcStore) GetCandidateQuestions(ctx context.Context, subjects []string) ([]models.Question, error) {
	return nil, nil
}

func (f *svcStore) GetQuestion(ctx context.Context, questionID string) (*models.Question, error) {
	return nil, nil
}

func (f *svcStore) GetRecentSessionQuestionIDs(ctx context.Context, userID string, sessions int) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (f *svcStore) GetFlashcardState(ctx context.Context, userID, cardID string) (*models.FlashcardReviewState, error) {
	return nil, nil
}

func (f *svcStore) GetFlashcardStates(ctx context.Context, userID string) ([]models.FlashcardReviewState, error) {
	return nil, nil
}

func (f *svcStore) SaveFlashcardState(ctx context.Context, state *models.FlashcardReviewState, prevReviewCount int) (bool, error) {
	return true, nil
}

type fakeSessionRepo struct {
	session         *models.StudySession
	recordAnswerErr error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *models.StudySession) error {
	f.session = session
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id string) (*models.StudySession, error) {
	if f.session == nil || f.session.ID != id {
		return nil, nil
	}
	cp := *f.session
	return &cp, nil
}

func (f *fakeSessionRepo) FindByUser(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	return nil, nil
}

func (f *fakeSessionRepo) RecordAnswer(ctx context.Context, sessionID, questionID string, correct bool) error {
	if f.recordAnswerErr != nil {
		return f.recordAnswerErr
	}
	for _, id := range f.session.SeenQuestionIDs {
		if id == questionID {
			return nil
		}
	}
	f.session.SeenQuestionIDs = append(f.session.SeenQuestionIDs, questionID)
	if correct {
		f.session.CorrectCount++
	}
	return nil
}

func (f *fakeSessionRepo) End(ctx context.Context, sessionID string, correctCount int, endedAt time.Time) error {
	f.session.Status = models.SessionStatusCompleted
	f.session.CorrectCount = correctCount
	f.session.EndedAt = &endedAt
	return nil
}

type fakeQuestions struct {
	questions map[string]*models.Question
}

func (f *fakeQuestions) FindByID(ctx context.Context, id string) (*models.Question, error) {
	return f.questions[id], nil
}

type fakeAttempts struct {
	store *svcStore
}

func (f *fakeAttempts) FindBySession(ctx context.Context, sessionID string) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range f.store.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestSessionService(t *testing.T, repo *fakeSessionRepo, store *svcStore) *SessionService {
	t.Helper()
	eng, err := engine.New(store, nil)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	questions := &fakeQuestions{questions: map[string]*models.Question{
		"q1": {
			ID: "q1", Subject: "biology", Chapter: 4, ChapterTitle: "Cells",
			CorrectAnswer: "B", Explanation: "because", Source: "Review",
		},
	}}
	return NewSessionService(repo, questions, &fakeAttempts{store: store}, eng, nil)
}

func TestSubmitAnswerGradesAndRecords(t *testing.T) {
	repo := &fakeSessionRepo{session: &models.StudySession{
		ID: "s1", UserID: "u1", TotalQuestions: 10, Status: models.SessionStatusActive,
	}}
	store := &svcStore{}
	s := newTestSessionService(t, repo, store)

	result, err := s.SubmitAnswer(context.Background(), "u1", "s1", "q1", "B", 30, false)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !result.Correct || result.CorrectAnswer != "B" {
		t.Errorf("result = %+v, want correct with answer B", result)
	}
	if result.Explanation != "because" || result.Citation.Source != "Review" {
		t.Errorf("reveal missing explanation or citation: %+v", result)
	}
	if result.SessionProgress.Answered != 1 || result.SessionProgress.Correct != 1 {
		t.Errorf("progress = %+v, want 1 answered 1 correct", result.SessionProgress)
	}
	if len(store.attempts) != 1 {
		t.Fatalf("attempt count = %d, want 1", len(store.attempts))
	}
	if len(repo.session.SeenQuestionIDs) != 1 || repo.session.SeenQuestionIDs[0] != "q1" {
		t.Errorf("seen set = %v, want [q1]", repo.session.SeenQuestionIDs)
	}
}

func TestSubmitAnswerSessionUpdateFailureLeavesNoAttempt(t *testing.T) {
	repo := &fakeSessionRepo{session: &models.StudySession{
		ID: "s1", UserID: "u1", TotalQuestions: 10, Status: models.SessionStatusActive,
	}}
	repo.recordAnswerErr = errors.New("write failed")
	store := &svcStore{}
	s := newTestSessionService(t, repo, store)

	_, err := s.SubmitAnswer(context.Background(), "u1", "s1", "q1", "B", 30, false)
	if err == nil {
		t.Fatal("expected an error when the session update fails")
	}
	// No attempt may be committed: a retry would otherwise double-record it.
	if len(store.attempts) != 0 {
		t.Errorf("attempt count = %d after failed session update, want 0", len(store.attempts))
	}
}
