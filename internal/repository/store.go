package repository

import (
	"context"

	"trainer-service/internal/models"
)

// EngineStore adapts the Mongo repositories to the engine's storage
// contract. The engine never sees a database handle, only this interface
// implementation.
type EngineStore struct {
	Attempts   *AttemptRepository
	Questions  *QuestionRepository
	Sessions   *SessionRepository
	Flashcards *FlashcardRepository
}

func NewEngineStore(
	attempts *AttemptRepository,
	questions *QuestionRepository,
	sessions *SessionRepository,
	flashcards *FlashcardRepository,
) *EngineStore {
	return &EngineStore{
		Attempts:   attempts,
		Questions:  questions,
		Sessions:   sessions,
		Flashcards: flashcards,
	}
}

func (s *EngineStore) GetAttempts(ctx context.Context, userID string) ([]models.Attempt, error) {
	return s.Attempts.FindByUser(ctx, userID)
}

func (s *EngineStore) SaveAttempt(ctx context.Context, attempt *models.Attempt) error {
	return s.Attempts.Create(ctx, attempt)
}

func (s *EngineStore) GetCandidateQuestions(ctx context.Context, subjects []string) ([]models.Question, error) {
	return s.Questions.FindBySubjects(ctx, subjects)
}

func (s *EngineStore) GetQuestion(ctx context.Context, questionID string) (*models.Question, error) {
	return s.Questions.FindByID(ctx, questionID)
}

func (s *EngineStore) GetRecentSessionQuestionIDs(ctx context.Context, userID string, sessions int) (map[string]bool, error) {
	recent, err := s.Sessions.FindByUser(ctx, userID, sessions)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, sess := range recent {
		for _, id := range sess.SeenQuestionIDs {
			seen[id] = true
		}
	}
	return seen, nil
}

func (s *EngineStore) GetFlashcardState(ctx context.Context, userID, cardID string) (*models.FlashcardReviewState, error) {
	return s.Flashcards.FindOne(ctx, userID, cardID)
}

func (s *EngineStore) GetFlashcardStates(ctx context.Context, userID string) ([]models.FlashcardReviewState, error) {
	return s.Flashcards.FindByUser(ctx, userID)
}

func (s *EngineStore) SaveFlashcardState(ctx context.Context, state *models.FlashcardReviewState, prevReviewCount int) (bool, error) {
	return s.Flashcards.Upsert(ctx, state, prevReviewCount)
}
