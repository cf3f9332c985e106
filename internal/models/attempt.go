package models

import "time"

// Attempt is an append-only record of one answered question. Attempts are
// created once per answer and never mutated or deleted; they are the source
// of truth for topic statistics and session anti-repeat.
//
// Subject/Chapter/ChapterTitle are denormalized from the question at answer
// time so aggregation never needs a join back into the content collection.
type Attempt struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	SessionID        string    `bson:"session_id" json:"session_id"`
	Subject          string    `bson:"subject" json:"subject"`
	Chapter          int       `bson:"chapter" json:"chapter"`
	ChapterTitle     string    `bson:"chapter_title" json:"chapter_title"`
	Correct          bool      `bson:"correct" json:"correct"`
	SelectedAnswer   string    `bson:"selected_answer" json:"selected_answer"`
	TimeTakenSeconds float64   `bson:"time_taken_seconds" json:"time_taken_seconds"`
	TimedOut         bool      `bson:"timed_out" json:"timed_out"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}
