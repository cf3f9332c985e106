package engine

import (
	"sort"
	"time"

	"trainer-service/internal/models"
)

// TopicKey identifies a topic: the (subject, chapter) pair. Topics are
// derived, never stored.
type TopicKey struct {
	Subject string
	Chapter int
}

// TopicStat is the per-topic aggregate over a user's full attempt history.
// It is recomputed on demand and never persisted independently, so it can
// never go stale.
type TopicStat struct {
	Subject       string
	Chapter       int
	ChapterTitle  string
	Correct       int
	Total         int
	LastAttemptAt *time.Time
	DaysSinceLast float64
}

// Accuracy returns correct/total, or 0 for an unattempted topic.
func (s *TopicStat) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// ComputeTopicStats groups an attempt history by exact (subject, chapter)
// key. Each attempt contributes to exactly one topic. Topics never attempted
// report staleDefault as their days-since-last.
func ComputeTopicStats(attempts []models.Attempt, now time.Time, staleDefault float64) map[TopicKey]*TopicStat {
	stats := make(map[TopicKey]*TopicStat)
	for i := range attempts {
		a := &attempts[i]
		key := TopicKey{Subject: a.Subject, Chapter: a.Chapter}
		st, ok := stats[key]
		if !ok {
			st = &TopicStat{
				Subject:      a.Subject,
				Chapter:      a.Chapter,
				ChapterTitle: a.ChapterTitle,
			}
			stats[key] = st
		}
		st.Total++
		if a.Correct {
			st.Correct++
		}
		if st.LastAttemptAt == nil || a.AnsweredAt.After(*st.LastAttemptAt) {
			t := a.AnsweredAt
			st.LastAttemptAt = &t
		}
		if st.ChapterTitle == "" {
			st.ChapterTitle = a.ChapterTitle
		}
	}

	for _, st := range stats {
		if st.LastAttemptAt == nil {
			st.DaysSinceLast = staleDefault
			continue
		}
		st.DaysSinceLast = now.Sub(*st.LastAttemptAt).Hours() / 24
		if st.DaysSinceLast < 0 {
			st.DaysSinceLast = 0
		}
	}

	return stats
}

// consecutiveCorrect replays the history in chronological order and returns
// each question's current run of consecutive correct answers. A wrong answer
// resets the run to zero.
func consecutiveCorrect(attempts []models.Attempt) map[string]int {
	ordered := make([]models.Attempt, len(attempts))
	copy(ordered, attempts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AnsweredAt.Before(ordered[j].AnsweredAt)
	})

	runs := make(map[string]int)
	for i := range ordered {
		if ordered[i].Correct {
			runs[ordered[i].QuestionID]++
		} else {
			runs[ordered[i].QuestionID] = 0
		}
	}
	return runs
}
