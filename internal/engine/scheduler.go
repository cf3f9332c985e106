package engine

import (
	"context"
	"sort"
	"time"

	"trainer-service/internal/models"
)

// ApplyReview advances one flashcard's review state machine by a single
// outcome. Pure: the caller owns persistence.
//
// Tiers move New -> Learning -> Mastered, with Mastered -> Learning
// backsliding on a miss. The very first review lands in Learning regardless
// of outcome. A correct review grows the interval geometrically up to the
// cap and can promote to Mastered once both the streak and the interval
// clear their thresholds; a miss resets the interval to base, bumps the
// permanent wrong count, and demotes to Learning.
func ApplyReview(state *models.FlashcardReviewState, correct bool, now time.Time, cfg *Config) {
	state.ReviewCount++
	state.LastReviewAt = now

	if correct {
		state.Streak++
		interval := state.IntervalDays * cfg.IntervalGrowth
		if interval < cfg.BaseIntervalDays {
			interval = cfg.BaseIntervalDays
		}
		if interval > cfg.MaxIntervalDays {
			interval = cfg.MaxIntervalDays
		}
		state.IntervalDays = interval

		state.Tier = models.TierLearning
		if state.Streak >= cfg.MasteryStreak && state.IntervalDays >= cfg.MasteryIntervalDays {
			state.Tier = models.TierMastered
		}
	} else {
		state.Streak = 0
		state.WrongCount++
		t := now
		state.LastWrongAt = &t
		state.IntervalDays = cfg.BaseIntervalDays
		state.Tier = models.TierLearning
	}

	state.DueAt = now.Add(time.Duration(state.IntervalDays * float64(24*time.Hour)))
}

// reviewRetries bounds the re-read loop when a concurrent review wins the
// optimistic write race.
const reviewRetries = 3

// SubmitFlashcardReview records one review outcome for a (user, card) pair
// and returns the updated durable state. The first review creates the row;
// every later review updates it in place. The save is conditional on the
// review count that was read: when another submission commits in between,
// the conditional write reports a conflict and the whole transition is
// re-read and re-applied, so no two reviews ever apply against the same
// pre-update streak.
func (e *Engine) SubmitFlashcardReview(ctx context.Context, userID, cardID string, correct bool, timeTaken float64) (*models.FlashcardReviewState, error) {
	for try := 0; try < reviewRetries; try++ {
		state, err := e.store.GetFlashcardState(ctx, userID, cardID)
		if err != nil {
			return nil, storageErr("get flashcard state", err)
		}
		prevReviewCount := 0
		if state == nil {
			question, qerr := e.store.GetQuestion(ctx, cardID)
			if qerr != nil {
				return nil, storageErr("get card", qerr)
			}
			if question == nil {
				return nil, ErrNotFound
			}
			state = &models.FlashcardReviewState{
				UserID:  userID,
				CardID:  cardID,
				Subject: question.Subject,
				Tier:    models.TierNew,
			}
		} else {
			prevReviewCount = state.ReviewCount
		}

		ApplyReview(state, correct, e.now(), e.cfg)

		ok, err := e.store.SaveFlashcardState(ctx, state, prevReviewCount)
		if err != nil {
			return nil, storageErr("save flashcard state", err)
		}
		if ok {
			return state, nil
		}
		// Lost the write race; re-read the committed state and re-apply.
	}
	return nil, storageErr("save flashcard state", errReviewConflict)
}

// GetDueFlashcards returns the user's cards with due_at <= now, soonest
// first, optionally filtered by subject. The read is idempotent: calling it
// twice with no intervening review yields the identical ordered list.
func (e *Engine) GetDueFlashcards(ctx context.Context, userID, subject string, limit int) ([]models.FlashcardReviewState, error) {
	states, err := e.store.GetFlashcardStates(ctx, userID)
	if err != nil {
		return nil, storageErr("get flashcard states", err)
	}

	now := e.now()
	due := make([]models.FlashcardReviewState, 0, len(states))
	for _, st := range states {
		if subject != "" && st.Subject != subject {
			continue
		}
		if st.DueAt.After(now) {
			continue
		}
		due = append(due, st)
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].CardID < due[j].CardID
		}
		return due[i].DueAt.Before(due[j].DueAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
