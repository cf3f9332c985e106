package models

import "time"

const (
	SessionModeMixed   = "mixed"
	SessionModeFocused = "focused"

	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// StudySession is a bounded practice run with a fixed target question count.
// SeenQuestionIDs is the authority for in-session anti-repeat; it grows as
// attempts accrue and is never pruned.
type StudySession struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	UserID          string     `bson:"user_id" json:"user_id"`
	Mode            string     `bson:"mode" json:"mode"`
	Subjects        []string   `bson:"subjects" json:"subjects"`
	TotalQuestions  int        `bson:"total_questions" json:"total_questions"`
	CorrectCount    int        `bson:"correct_count" json:"correct_count"`
	SeenQuestionIDs []string   `bson:"seen_question_ids" json:"seen_question_ids"`
	Status          string     `bson:"status" json:"status"`
	StartedAt       time.Time  `bson:"started_at" json:"started_at"`
	EndedAt         *time.Time `bson:"ended_at,omitempty" json:"ended_at,omitempty"`
}

// SeenSet converts the stored seen list into a lookup set for the sampler.
func (s *StudySession) SeenSet() map[string]bool {
	seen := make(map[string]bool, len(s.SeenQuestionIDs))
	for _, id := range s.SeenQuestionIDs {
		seen[id] = true
	}
	return seen
}

// SubjectBreakdown is the per-subject slice of a session summary.
type SubjectBreakdown struct {
	Correct int `bson:"correct" json:"correct"`
	Total   int `bson:"total" json:"total"`
}

// SessionSummary is returned when a session is ended.
type SessionSummary struct {
	SessionID      string                      `json:"session_id"`
	TotalQuestions int                         `json:"total_questions"`
	CorrectCount   int                         `json:"correct_count"`
	Accuracy       float64                     `json:"accuracy"`
	AvgTimeSeconds float64                     `json:"avg_time_seconds"`
	BySubject      map[string]SubjectBreakdown `json:"by_subject"`
	EndedAt        time.Time                   `json:"ended_at"`
}

// SessionProgress is the running tally attached to every answer result.
type SessionProgress struct {
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}
