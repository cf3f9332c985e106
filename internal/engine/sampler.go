package engine

import (
	"context"
	"sort"

	"trainer-service/internal/models"
)

// Relaxation levels for the selection fallback ladder. Each level is tried
// in this fixed order so behavior stays deterministic and testable.
const (
	relaxNone       = iota // all penalties and exclusions active
	relaxRecentSeen        // drop the recent-sessions penalty
	relaxSubject           // additionally drop the subject filter
	relaxSessionSeen       // additionally drop the session-seen exclusion
)

// SelectNextQuestion draws the next question for a user with weighted
// random selection biased toward weak topics.
//
// Candidates are all questions matching the subject filter minus the
// session's seen set. Each candidate carries its topic's weight, softened
// multiplicatively (never excluded outright) when the question was seen in
// the user's recent sessions or has a long run of consecutive correct
// answers. When a relaxation level yields no candidates the next level is
// tried; only after all three does ErrNoCandidates fire.
func (e *Engine) SelectNextQuestion(ctx context.Context, userID string, sessionSeen map[string]bool, subjects []string) (*models.Question, error) {
	attempts, err := e.store.GetAttempts(ctx, userID)
	if err != nil {
		return nil, storageErr("get attempts", err)
	}

	questions, err := e.store.GetCandidateQuestions(ctx, subjects)
	if err != nil {
		return nil, storageErr("get candidate questions", err)
	}

	recentSeen, err := e.store.GetRecentSessionQuestionIDs(ctx, userID, e.cfg.RecentSessionCount)
	if err != nil {
		return nil, storageErr("get recent session questions", err)
	}

	stats := ComputeTopicStats(attempts, e.now(), e.cfg.StaleDaysDefault)
	weights := weightsFromStats(stats, e.cfg)
	runs := consecutiveCorrect(attempts)

	for level := relaxNone; level <= relaxSessionSeen; level++ {
		if level == relaxSubject && len(subjects) > 0 {
			// The subject filter is dropped from here on: widen the
			// candidate pool to the full catalog.
			questions, err = e.store.GetCandidateQuestions(ctx, nil)
			if err != nil {
				return nil, storageErr("get candidate questions", err)
			}
		}
		candidates, candidateWeights := e.buildCandidates(questions, weights, runs, recentSeen, sessionSeen, level)
		if len(candidates) == 0 {
			continue
		}
		return e.draw(candidates, candidateWeights), nil
	}

	return nil, ErrNoCandidates
}

func (e *Engine) buildCandidates(
	questions []models.Question,
	weights map[TopicKey]float64,
	runs map[string]int,
	recentSeen map[string]bool,
	sessionSeen map[string]bool,
	level int,
) ([]*models.Question, []float64) {
	var candidates []*models.Question
	var candidateWeights []float64

	for i := range questions {
		q := &questions[i]

		if level < relaxSessionSeen && sessionSeen[q.ID] {
			continue
		}

		// A candidate question proves its topic is mapped; no entry in the
		// weights map just means the topic was never attempted.
		w, ok := weights[TopicKey{Subject: q.Subject, Chapter: q.Chapter}]
		if !ok {
			w = e.cfg.UnseenTopicWeight
		}
		if level < relaxRecentSeen && recentSeen[q.ID] {
			w *= e.cfg.RecentSessionPenalty
		}
		if runs[q.ID] >= e.cfg.MasteryRunLength {
			w *= e.cfg.MasteryPenalty
		}

		candidates = append(candidates, q)
		candidateWeights = append(candidateWeights, w)
	}

	return candidates, candidateWeights
}

// draw performs one weighted random draw over the candidates: cumulative
// prefix sums, a uniform draw over the total, then a binary search. O(log n)
// per draw after the O(n) prefix build, on the hot path of every question
// request.
func (e *Engine) draw(candidates []*models.Question, weights []float64) *models.Question {
	prefix := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		prefix[i] = total
	}

	// Weights are strictly positive by construction, so total > 0.
	r := e.rand.Float64() * total
	idx := sort.SearchFloat64s(prefix, r)
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	return candidates[idx]
}
