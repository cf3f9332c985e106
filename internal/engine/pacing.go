package engine

import (
	"math"
	"time"
)

// PaceStatus is the advisory pacing verdict for a running session.
type PaceStatus string

const (
	PaceAhead   PaceStatus = "ahead"
	PaceOnTrack PaceStatus = "on_track"
	PaceBehind  PaceStatus = "behind"
)

// PacingInfo compares session progress against the target pace.
type PacingInfo struct {
	ExpectedItem int        `json:"expected_item"`
	Answered     int        `json:"answered"`
	Pace         int        `json:"pace"`
	Status       PaceStatus `json:"status"`
}

// GetPacingInfo is a pure advisory comparison of elapsed time against
// progress. It never blocks or mutates anything. The expected item index is
// how far along the user "should" be at the target seconds-per-item rate,
// clamped to the session target.
func (e *Engine) GetPacingInfo(elapsed time.Duration, answered, totalTarget int) PacingInfo {
	expected := int(math.Floor(elapsed.Seconds()/e.cfg.TargetSecondsPerItem)) + 1
	if expected < 1 {
		expected = 1
	}
	if totalTarget > 0 && expected > totalTarget {
		expected = totalTarget
	}

	pace := answered - expected
	status := PaceOnTrack
	switch {
	case pace >= e.cfg.PaceTolerance:
		status = PaceAhead
	case pace <= -e.cfg.PaceTolerance:
		status = PaceBehind
	}

	return PacingInfo{
		ExpectedItem: expected,
		Answered:     answered,
		Pace:         pace,
		Status:       status,
	}
}
