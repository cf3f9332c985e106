package models

import "time"

// User is an unauthenticated name selection. There are no credentials;
// picking a name on the frontend is the whole login flow.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// UserStats summarizes a user's lifetime practice activity.
type UserStats struct {
	TotalAttempts   int     `bson:"total_attempts" json:"total_attempts"`
	TotalCorrect    int     `bson:"total_correct" json:"total_correct"`
	Accuracy        float64 `bson:"accuracy" json:"accuracy"`
	TotalSessions   int     `bson:"total_sessions" json:"total_sessions"`
	AvgTimeSeconds  float64 `bson:"avg_time_seconds" json:"avg_time_seconds"`
	SubjectsStudied int     `bson:"subjects_studied" json:"subjects_studied"`
}
