package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTopicWeightValues(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name     string
		correct  int
		total    int
		days     float64
		expected float64
	}{
		{"10 attempts 2 correct just seen", 2, 10, 0, 0.8},
		{"unattempted topic fresh", 0, 0, 0, 0.7},
		{"unattempted topic ignores recency", 0, 0, 30, 0.7},
		{"perfect accuracy floors at minimum", 10, 10, 0, 0.1},
		{"full recency boost", 5, 10, 14, 0.5 * 1.5},
		{"boost capped beyond window", 5, 10, 60, 0.5 * 1.5},
		{"half window boost", 5, 10, 7, 0.5 * 1.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &TopicStat{Correct: tc.correct, Total: tc.total, DaysSinceLast: tc.days}
			got := topicWeight(st, cfg)
			if !almostEqual(got, tc.expected) {
				t.Errorf("weight = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestTopicWeightAlwaysPositive(t *testing.T) {
	cfg := DefaultConfig()
	for total := 0; total <= 20; total++ {
		for correct := 0; correct <= total; correct++ {
			for _, days := range []float64{0, 1, 14, 100} {
				st := &TopicStat{Correct: correct, Total: total, DaysSinceLast: days}
				if w := topicWeight(st, cfg); w <= 0 {
					t.Fatalf("weight(%d/%d, %v days) = %v, must be > 0", correct, total, days, w)
				}
			}
		}
	}
}

func TestTopicWeightNonIncreasingInAccuracy(t *testing.T) {
	cfg := DefaultConfig()
	const total = 20
	prev := math.Inf(1)
	for correct := 0; correct <= total; correct++ {
		st := &TopicStat{Correct: correct, Total: total, DaysSinceLast: 5}
		w := topicWeight(st, cfg)
		if w > prev {
			t.Fatalf("weight increased with accuracy: %d/%d -> %v (previous %v)", correct, total, w, prev)
		}
		prev = w
	}
}
