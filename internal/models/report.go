package models

// WeakTopic is one entry in the review-suggestion list: a topic with enough
// attempts to judge and a low accuracy.
type WeakTopic struct {
	Subject       string  `json:"subject"`
	Chapter       int     `json:"chapter"`
	ChapterTitle  string  `json:"chapter_title"`
	Accuracy      float64 `json:"accuracy"`
	TotalAttempts int     `json:"total_attempts"`
}

// ChapterAnalytics is one chapter row inside a subject analytics block.
type ChapterAnalytics struct {
	Chapter      int     `json:"chapter"`
	ChapterTitle string  `json:"chapter_title"`
	Accuracy     float64 `json:"accuracy"`
	Attempts     int     `json:"attempts"`
}

// SubjectAnalytics groups chapter performance under one subject.
type SubjectAnalytics struct {
	Chapters      []ChapterAnalytics `json:"chapters"`
	TotalCorrect  int                `json:"total_correct"`
	TotalAttempts int                `json:"total_attempts"`
	Accuracy      float64            `json:"accuracy"`
}

// TrendPoint is one day of aggregated attempt activity.
type TrendPoint struct {
	Date     string  `bson:"date" json:"date"`
	Total    int     `bson:"total" json:"total"`
	Correct  int     `bson:"correct" json:"correct"`
	Accuracy float64 `bson:"accuracy" json:"accuracy"`
	AvgTime  float64 `bson:"avg_time" json:"avg_time"`
}
