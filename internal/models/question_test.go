package models

import "testing"

func sampleQuestion() Question {
	return Question{
		ID:             "q1",
		Subject:        "biology",
		Chapter:        4,
		ChapterTitle:   "Cell Metabolism",
		QuestionNumber: 12,
		QuestionText:   "Which pathway produces the most ATP?",
		Options: []Option{
			{ID: "A", Text: "Glycolysis"},
			{ID: "B", Text: "Oxidative phosphorylation"},
		},
		CorrectAnswer: "B",
		Explanation:   "The electron transport chain yields ~34 ATP.",
		Source:        "Biology Review",
	}
}

func TestPublicOmitsAnswerAndExplanation(t *testing.T) {
	q := sampleQuestion()
	pub := q.Public()

	if pub.ID != q.ID || pub.Subject != q.Subject || pub.Chapter != q.Chapter {
		t.Errorf("public view lost identity fields: %+v", pub)
	}
	if len(pub.Options) != len(q.Options) {
		t.Errorf("public view has %d options, want %d", len(pub.Options), len(q.Options))
	}
	if pub.QuestionText != q.QuestionText {
		t.Errorf("question text = %q, want %q", pub.QuestionText, q.QuestionText)
	}
}

func TestCite(t *testing.T) {
	q := sampleQuestion()
	c := q.Cite()

	if c.Source != "Biology Review" || c.Chapter != 4 || c.QuestionNumber != 12 {
		t.Errorf("citation = %+v", c)
	}
	if c.ChapterTitle != "Cell Metabolism" {
		t.Errorf("chapter title = %q", c.ChapterTitle)
	}
}
