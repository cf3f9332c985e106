package engine

import (
	"context"
	"sort"
	"time"

	"trainer-service/internal/models"
)

// Leech is one chronically-missed card. There is no separate leech state:
// the wrong count on the review row is the single source of truth.
type Leech struct {
	CardID      string     `json:"card_id"`
	Subject     string     `json:"subject"`
	WrongCount  int        `json:"wrong_count"`
	LastWrongAt *time.Time `json:"last_wrong_at,omitempty"`
}

// IsLeech reports whether a card's recorded wrong count has reached the
// threshold. The flag flips exactly at the threshold, never earlier, and
// never flips back since wrong counts are never reset.
func IsLeech(state *models.FlashcardReviewState, threshold int) bool {
	return state.WrongCount >= threshold
}

// GetLeeches lists the user's leeches, worst first, ties broken by most
// recent miss. minWrong <= 0 falls back to the configured threshold.
func (e *Engine) GetLeeches(ctx context.Context, userID string, minWrong int) ([]Leech, error) {
	if minWrong <= 0 {
		minWrong = e.cfg.LeechThreshold
	}

	states, err := e.store.GetFlashcardStates(ctx, userID)
	if err != nil {
		return nil, storageErr("get flashcard states", err)
	}

	leeches := make([]Leech, 0)
	for i := range states {
		if !IsLeech(&states[i], minWrong) {
			continue
		}
		leeches = append(leeches, Leech{
			CardID:      states[i].CardID,
			Subject:     states[i].Subject,
			WrongCount:  states[i].WrongCount,
			LastWrongAt: states[i].LastWrongAt,
		})
	}

	sort.SliceStable(leeches, func(i, j int) bool {
		if leeches[i].WrongCount != leeches[j].WrongCount {
			return leeches[i].WrongCount > leeches[j].WrongCount
		}
		li, lj := leeches[i].LastWrongAt, leeches[j].LastWrongAt
		switch {
		case li == nil:
			return false
		case lj == nil:
			return true
		default:
			return li.After(*lj)
		}
	})

	return leeches, nil
}
