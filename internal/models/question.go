package models

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Question is immutable reference content. Options are stored as typed
// documents, not a raw JSON blob, so scoring code never decodes anything.
type Question struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	Subject        string   `bson:"subject" json:"subject"`
	Chapter        int      `bson:"chapter" json:"chapter"`
	ChapterTitle   string   `bson:"chapter_title" json:"chapter_title"`
	QuestionNumber int      `bson:"question_number" json:"question_number"`
	QuestionText   string   `bson:"question_text" json:"question_text"`
	Options        []Option `bson:"options" json:"options"`
	CorrectAnswer  string   `bson:"correct_answer" json:"correct_answer"`
	Explanation    string   `bson:"explanation" json:"explanation"`
	Source         string   `bson:"source" json:"source"`
}

// PublicQuestion is the view served before an answer is submitted.
// The correct answer and explanation are revealed only after answering.
type PublicQuestion struct {
	ID             string   `json:"id"`
	Subject        string   `json:"subject"`
	Chapter        int      `json:"chapter"`
	ChapterTitle   string   `json:"chapter_title"`
	QuestionNumber int      `json:"question_number"`
	QuestionText   string   `json:"question_text"`
	Options        []Option `json:"options"`
}

// Public strips the answer and explanation for pre-answer delivery.
func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:             q.ID,
		Subject:        q.Subject,
		Chapter:        q.Chapter,
		ChapterTitle:   q.ChapterTitle,
		QuestionNumber: q.QuestionNumber,
		QuestionText:   q.QuestionText,
		Options:        q.Options,
	}
}

// Citation identifies where a question came from in the source review books.
type Citation struct {
	Source         string `json:"source"`
	Chapter        int    `json:"chapter"`
	ChapterTitle   string `json:"chapter_title"`
	QuestionNumber int    `json:"question_number"`
}

func (q *Question) Cite() Citation {
	return Citation{
		Source:         q.Source,
		Chapter:        q.Chapter,
		ChapterTitle:   q.ChapterTitle,
		QuestionNumber: q.QuestionNumber,
	}
}
