package engine

import (
	"context"

	"trainer-service/internal/models"
)

// Store is the storage collaborator contract. The engine receives one
// explicitly at construction instead of reaching for a shared database
// handle, so per-user isolation is enforced by the type system rather than
// by convention. All reads are scoped to a single user; the engine never
// touches another user's rows.
//
// GetFlashcardState returns (nil, nil) when the (user, card) pair has no
// review state yet; the scheduler treats that as a brand-new card.
type Store interface {
	GetAttempts(ctx context.Context, userID string) ([]models.Attempt, error)
	SaveAttempt(ctx context.Context, attempt *models.Attempt) error

	GetCandidateQuestions(ctx context.Context, subjects []string) ([]models.Question, error)
	GetQuestion(ctx context.Context, questionID string) (*models.Question, error)

	// GetRecentSessionQuestionIDs returns the union of question ids seen in
	// the user's most recent closed sessions, up to the given count.
	GetRecentSessionQuestionIDs(ctx context.Context, userID string, sessions int) (map[string]bool, error)

	GetFlashcardState(ctx context.Context, userID, cardID string) (*models.FlashcardReviewState, error)
	GetFlashcardStates(ctx context.Context, userID string) ([]models.FlashcardReviewState, error)

	// SaveFlashcardState persists a review transition conditionally: the
	// write only applies if the stored row still carries prevReviewCount
	// reviews (0 for a row that does not exist yet). It returns false when
	// another review committed in between, so the caller must re-read and
	// re-apply instead of overwriting the concurrent transition.
	SaveFlashcardState(ctx context.Context, state *models.FlashcardReviewState, prevReviewCount int) (bool, error)
}
