package engine

import "fmt"

// Config holds every tuning value for the selection and scheduling engine.
// The defaults are product tuning, not structural requirements, so all of
// them are overridable (see internal/config for the env mapping).
type Config struct {
	// UnseenTopicWeight is assigned to topics with no attempts. It sits
	// deliberately below the maximum: total ignorance is not automatically
	// worse than confirmed poor performance.
	UnseenTopicWeight float64

	// MinTopicWeight floors the accuracy-derived base weight so no topic
	// ever becomes unreachable.
	MinTopicWeight float64

	// DefaultTopicWeight is used for questions whose topic has no computed
	// weight at all (unknown/unmapped topics).
	DefaultTopicWeight float64

	// RecencyWindowDays is the staleness horizon: a topic untouched for
	// this many days earns the full recency boost.
	RecencyWindowDays float64

	// RecencyBoostFactor scales the maximum recency boost.
	RecencyBoostFactor float64

	// StaleDaysDefault is the days-since-last value assumed for topics
	// with no recorded attempts.
	StaleDaysDefault float64

	// RecentSessionCount is how many past sessions feed the soft
	// deprioritization of recently seen questions.
	RecentSessionCount int

	// RecentSessionPenalty multiplies the weight of questions seen in the
	// user's recent sessions. Must stay below 1 but above 0 so nothing is
	// starved outright.
	RecentSessionPenalty float64

	// MasteryRunLength is the consecutive-correct run after which a
	// question is considered provisionally mastered by the sampler.
	MasteryRunLength int

	// MasteryPenalty multiplies the weight of provisionally mastered
	// questions.
	MasteryPenalty float64

	// IntervalGrowth multiplies the review interval on each correct
	// flashcard review.
	IntervalGrowth float64

	// BaseIntervalDays is the interval after an incorrect review and the
	// minimum interval after a correct one.
	BaseIntervalDays float64

	// MaxIntervalDays caps interval growth.
	MaxIntervalDays float64

	// MasteryStreak and MasteryIntervalDays together gate the
	// Learning -> Mastered promotion.
	MasteryStreak       int
	MasteryIntervalDays float64

	// LeechThreshold is the wrong-count at which a card becomes a leech.
	LeechThreshold int

	// TargetSecondsPerItem drives the session pacing monitor.
	TargetSecondsPerItem float64

	// PaceTolerance is the item delta at which pacing flips from on-track
	// to ahead/behind.
	PaceTolerance int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		UnseenTopicWeight:    0.7,
		MinTopicWeight:       0.1,
		DefaultTopicWeight:   0.5,
		RecencyWindowDays:    14,
		RecencyBoostFactor:   0.5,
		StaleDaysDefault:     30,
		RecentSessionCount:   3,
		RecentSessionPenalty: 0.7,
		MasteryRunLength:     3,
		MasteryPenalty:       0.5,
		IntervalGrowth:       2.5,
		BaseIntervalDays:     1,
		MaxIntervalDays:      180,
		MasteryStreak:        3,
		MasteryIntervalDays:  6,
		LeechThreshold:       3,
		TargetSecondsPerItem: 95,
		PaceTolerance:        2,
	}
}

// Validate rejects values that would break sampler or scheduler invariants,
// in particular anything that could produce a non-positive sampling weight.
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.UnseenTopicWeight > 0, "UnseenTopicWeight must be > 0"},
		{c.MinTopicWeight > 0, "MinTopicWeight must be > 0"},
		{c.DefaultTopicWeight > 0, "DefaultTopicWeight must be > 0"},
		{c.RecencyWindowDays > 0, "RecencyWindowDays must be > 0"},
		{c.RecencyBoostFactor >= 0, "RecencyBoostFactor must be >= 0"},
		{c.StaleDaysDefault >= 0, "StaleDaysDefault must be >= 0"},
		{c.RecentSessionCount >= 0, "RecentSessionCount must be >= 0"},
		{c.RecentSessionPenalty > 0 && c.RecentSessionPenalty <= 1, "RecentSessionPenalty must be in (0, 1]"},
		{c.MasteryRunLength >= 1, "MasteryRunLength must be >= 1"},
		{c.MasteryPenalty > 0 && c.MasteryPenalty <= 1, "MasteryPenalty must be in (0, 1]"},
		{c.IntervalGrowth >= 1, "IntervalGrowth must be >= 1"},
		{c.BaseIntervalDays > 0, "BaseIntervalDays must be > 0"},
		{c.MaxIntervalDays >= c.BaseIntervalDays, "MaxIntervalDays must be >= BaseIntervalDays"},
		{c.MasteryStreak >= 1, "MasteryStreak must be >= 1"},
		{c.MasteryIntervalDays >= 0, "MasteryIntervalDays must be >= 0"},
		{c.LeechThreshold >= 1, "LeechThreshold must be >= 1"},
		{c.TargetSecondsPerItem > 0, "TargetSecondsPerItem must be > 0"},
		{c.PaceTolerance >= 1, "PaceTolerance must be >= 1"},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, ch.what)
		}
	}
	return nil
}
