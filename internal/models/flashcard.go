package models

import "time"

// Tier is the discrete spaced-repetition state of a flashcard.
type Tier string

const (
	TierNew      Tier = "new"
	TierLearning Tier = "learning"
	TierMastered Tier = "mastered"
)

// FlashcardReviewState is the durable per-(user, card) scheduling row.
// It is created on the first review and updated in place from then on;
// it is never recreated. WrongCount is monotonically non-decreasing and is
// never reset: chronic-miss evidence is permanent, later success does not
// erase it.
//
// Tier transitions are owned by the scheduler in internal/engine; callers
// must never set Tier directly.
type FlashcardReviewState struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	UserID       string     `bson:"user_id" json:"user_id"`
	CardID       string     `bson:"card_id" json:"card_id"`
	Subject      string     `bson:"subject" json:"subject"`
	Streak       int        `bson:"streak" json:"streak"`
	WrongCount   int        `bson:"wrong_count" json:"wrong_count"`
	LastWrongAt  *time.Time `bson:"last_wrong_at,omitempty" json:"last_wrong_at,omitempty"`
	IntervalDays float64    `bson:"interval_days" json:"interval_days"`
	DueAt        time.Time  `bson:"due_at" json:"due_at"`
	Tier         Tier       `bson:"tier" json:"tier"`
	ReviewCount  int        `bson:"review_count" json:"review_count"`
	LastReviewAt time.Time  `bson:"last_review_at" json:"last_review_at"`
}
