package models

import "testing"

func TestSeenSet(t *testing.T) {
	s := StudySession{SeenQuestionIDs: []string{"q1", "q2", "q2"}}
	seen := s.SeenSet()

	if !seen["q1"] || !seen["q2"] {
		t.Errorf("seen set missing ids: %v", seen)
	}
	if seen["q3"] {
		t.Error("q3 should not be in the seen set")
	}
	if len(seen) != 2 {
		t.Errorf("seen set has %d entries, want 2", len(seen))
	}
}
