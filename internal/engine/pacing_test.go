package engine

import (
	"testing"
	"time"
)

func TestGetPacingInfo(t *testing.T) {
	e := newTestEngine(t, newFakeStore(), nil)

	// 95 seconds per item: the expected index advances every 95s.
	cases := []struct {
		name         string
		elapsed      time.Duration
		answered     int
		total        int
		wantExpected int
		wantStatus   PaceStatus
	}{
		{"session start", 0, 0, 20, 1, PaceOnTrack},
		{"on pace", 190 * time.Second, 3, 20, 3, PaceOnTrack},
		{"one ahead is still on track", 95 * time.Second, 3, 20, 2, PaceOnTrack},
		{"two ahead", 95 * time.Second, 4, 20, 2, PaceAhead},
		{"two behind", 8 * 95 * time.Second, 7, 20, 9, PaceBehind},
		{"one behind is still on track", 3 * 95 * time.Second, 3, 20, 4, PaceOnTrack},
		{"expected clamped to target", 2 * time.Hour, 20, 20, 20, PaceOnTrack},
		{"clamp keeps finished session from reading behind", 2 * time.Hour, 18, 20, 20, PaceBehind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := e.GetPacingInfo(tc.elapsed, tc.answered, tc.total)
			if info.ExpectedItem != tc.wantExpected {
				t.Errorf("expected item = %d, want %d", info.ExpectedItem, tc.wantExpected)
			}
			if info.Status != tc.wantStatus {
				t.Errorf("status = %s, want %s", info.Status, tc.wantStatus)
			}
			if info.Pace != tc.answered-tc.wantExpected {
				t.Errorf("pace = %d, want %d", info.Pace, tc.answered-tc.wantExpected)
			}
		})
	}
}
