// Package engine implements the adaptive selection and spaced-repetition
// core: topic mastery aggregation, weakness-biased weighted sampling,
// flashcard scheduling, leech detection, and session pacing. Everything
// here is synchronous, per-request, and scoped to a single user; persistence
// is delegated to the Store collaborator.
package engine

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"trainer-service/internal/models"
)

// Engine is the decision layer over a user's stored history. It holds no
// per-user state of its own; every operation recomputes from the store.
type Engine struct {
	store Store
	cfg   *Config
	rand  *rand.Rand
	now   func() time.Time
}

// New builds an engine over a storage collaborator. A nil config takes the
// documented defaults; an out-of-range config is rejected up front.
func New(store Store, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		store: store,
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}, nil
}

// Config exposes the active tuning values (read-only use).
func (e *Engine) Config() *Config {
	return e.cfg
}

// TopicStats recomputes the user's per-topic aggregates from their full
// attempt history.
func (e *Engine) TopicStats(ctx context.Context, userID string) (map[TopicKey]*TopicStat, error) {
	attempts, err := e.store.GetAttempts(ctx, userID)
	if err != nil {
		return nil, storageErr("get attempts", err)
	}
	return ComputeTopicStats(attempts, e.now(), e.cfg.StaleDaysDefault), nil
}

// RecordAttempt appends one attempt and returns the refreshed aggregate for
// its topic. The write and the aggregate read are one logical operation: if
// either step fails the whole call reports failure.
func (e *Engine) RecordAttempt(ctx context.Context, attempt *models.Attempt) (*TopicStat, error) {
	if attempt.AnsweredAt.IsZero() {
		attempt.AnsweredAt = e.now()
	}
	if err := e.store.SaveAttempt(ctx, attempt); err != nil {
		return nil, storageErr("save attempt", err)
	}

	stats, err := e.TopicStats(ctx, attempt.UserID)
	if err != nil {
		return nil, err
	}
	st, ok := stats[TopicKey{Subject: attempt.Subject, Chapter: attempt.Chapter}]
	if !ok {
		// The attempt we just wrote must be visible in the aggregate.
		return nil, storageErr("read back attempt aggregate", ErrNotFound)
	}
	return st, nil
}

// WeakTopics lists the user's lowest-accuracy topics for review suggestions.
// Topics need at least minAttempts attempts to qualify, so one unlucky
// answer does not brand a topic weak.
func (e *Engine) WeakTopics(ctx context.Context, userID string, minAttempts, limit int) ([]models.WeakTopic, error) {
	stats, err := e.TopicStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	topics := make([]models.WeakTopic, 0, len(stats))
	for _, st := range stats {
		if st.Total < minAttempts {
			continue
		}
		topics = append(topics, models.WeakTopic{
			Subject:       st.Subject,
			Chapter:       st.Chapter,
			ChapterTitle:  st.ChapterTitle,
			Accuracy:      st.Accuracy(),
			TotalAttempts: st.Total,
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Accuracy != topics[j].Accuracy {
			return topics[i].Accuracy < topics[j].Accuracy
		}
		if topics[i].Subject != topics[j].Subject {
			return topics[i].Subject < topics[j].Subject
		}
		return topics[i].Chapter < topics[j].Chapter
	})

	if limit > 0 && len(topics) > limit {
		topics = topics[:limit]
	}
	return topics, nil
}
