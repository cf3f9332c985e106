package config

import (
	"os"
	"strconv"

	"trainer-service/internal/engine"
)

// EngineConfigFromEnv starts from the engine defaults and applies any
// overrides present in the environment. The values are product tuning;
// deployments adjust them without code changes.
func EngineConfigFromEnv() *engine.Config {
	cfg := engine.DefaultConfig()

	envFloat("TRAINER_UNSEEN_TOPIC_WEIGHT", &cfg.UnseenTopicWeight)
	envFloat("TRAINER_MIN_TOPIC_WEIGHT", &cfg.MinTopicWeight)
	envFloat("TRAINER_DEFAULT_TOPIC_WEIGHT", &cfg.DefaultTopicWeight)
	envFloat("TRAINER_RECENCY_WINDOW_DAYS", &cfg.RecencyWindowDays)
	envFloat("TRAINER_RECENCY_BOOST_FACTOR", &cfg.RecencyBoostFactor)
	envFloat("TRAINER_STALE_DAYS_DEFAULT", &cfg.StaleDaysDefault)
	envInt("TRAINER_RECENT_SESSION_COUNT", &cfg.RecentSessionCount)
	envFloat("TRAINER_RECENT_SESSION_PENALTY", &cfg.RecentSessionPenalty)
	envInt("TRAINER_MASTERY_RUN_LENGTH", &cfg.MasteryRunLength)
	envFloat("TRAINER_MASTERY_PENALTY", &cfg.MasteryPenalty)
	envFloat("TRAINER_INTERVAL_GROWTH", &cfg.IntervalGrowth)
	envFloat("TRAINER_BASE_INTERVAL_DAYS", &cfg.BaseIntervalDays)
	envFloat("TRAINER_MAX_INTERVAL_DAYS", &cfg.MaxIntervalDays)
	envInt("TRAINER_MASTERY_STREAK", &cfg.MasteryStreak)
	envFloat("TRAINER_MASTERY_INTERVAL_DAYS", &cfg.MasteryIntervalDays)
	envInt("TRAINER_LEECH_THRESHOLD", &cfg.LeechThreshold)
	envFloat("TRAINER_TARGET_SECONDS_PER_ITEM", &cfg.TargetSecondsPerItem)
	envInt("TRAINER_PACE_TOLERANCE", &cfg.PaceTolerance)

	return cfg
}

func envFloat(key string, dst *float64) {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			*dst = v
		}
	}
}

func envInt(key string, dst *int) {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			*dst = v
		}
	}
}
