package service

import (
	"context"

	"trainer-service/internal/engine"
	"trainer-service/internal/event"
	"trainer-service/internal/models"
)

type FlashcardService struct {
	Engine    *engine.Engine
	Publisher *event.Publisher
}

func NewFlashcardService(eng *engine.Engine, publisher *event.Publisher) *FlashcardService {
	return &FlashcardService{Engine: eng, Publisher: publisher}
}

// SubmitReview runs one review outcome through the scheduler. Crossing the
// leech threshold on this review emits a leech-flagged event exactly once.
func (s *FlashcardService) SubmitReview(ctx context.Context, userID, cardID string, correct bool, timeTaken float64) (*models.FlashcardReviewState, error) {
	threshold := s.Engine.Config().LeechThreshold
	state, err := s.Engine.SubmitFlashcardReview(ctx, userID, cardID, correct, timeTaken)
	if err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		s.Publisher.Publish("trainer.review.submitted", map[string]interface{}{
			"user_id": userID,
			"card_id": cardID,
			"correct": correct,
			"tier":    state.Tier,
		})
		if !correct && state.WrongCount == threshold {
			s.Publisher.Publish("trainer.leech.flagged", map[string]interface{}{
				"user_id":     userID,
				"card_id":     cardID,
				"wrong_count": state.WrongCount,
			})
		}
	}
	return state, nil
}

func (s *FlashcardService) GetDue(ctx context.Context, userID, subject string, limit int) ([]models.FlashcardReviewState, error) {
	return s.Engine.GetDueFlashcards(ctx, userID, subject, limit)
}

func (s *FlashcardService) GetLeeches(ctx context.Context, userID string, minWrong int) ([]engine.Leech, error) {
	return s.Engine.GetLeeches(ctx, userID, minWrong)
}
