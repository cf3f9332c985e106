package engine

import "context"

// topicWeight maps one topic aggregate to a sampling weight. Lower accuracy
// means higher weight; topics not seen in a while earn a boost. The result
// is strictly positive for any valid config, which the sampler relies on.
func topicWeight(st *TopicStat, cfg *Config) float64 {
	if st.Total == 0 {
		// Never attempted: medium-high priority, regardless of recency.
		// Total ignorance is not automatically worse than confirmed poor
		// performance, so this sits below the maximum.
		return cfg.UnseenTopicWeight
	}

	base := 1 - st.Accuracy()
	if base < cfg.MinTopicWeight {
		base = cfg.MinTopicWeight
	}

	boost := st.DaysSinceLast / cfg.RecencyWindowDays
	if boost > 1 {
		boost = 1
	}
	return base * (1 + cfg.RecencyBoostFactor*boost)
}

// weightsFromStats derives the full topic -> weight mapping.
func weightsFromStats(stats map[TopicKey]*TopicStat, cfg *Config) map[TopicKey]float64 {
	weights := make(map[TopicKey]float64, len(stats))
	for key, st := range stats {
		weights[key] = topicWeight(st, cfg)
	}
	return weights
}

// ComputeTopicWeights recomputes the user's topic weights from their full
// attempt history. Topics with attempts carry their derived weight; a topic
// the sampler encounters without an entry here is unseen and takes
// UnseenTopicWeight.
func (e *Engine) ComputeTopicWeights(ctx context.Context, userID string) (map[TopicKey]float64, error) {
	attempts, err := e.store.GetAttempts(ctx, userID)
	if err != nil {
		return nil, storageErr("get attempts", err)
	}
	stats := ComputeTopicStats(attempts, e.now(), e.cfg.StaleDaysDefault)
	return weightsFromStats(stats, e.cfg), nil
}

// TopicWeightFor looks up a topic's weight, falling back to the configured
// default for unknown/unmapped topic keys. Unmapped topics have no candidate
// questions, so the default is reported but never drawn.
func (e *Engine) TopicWeightFor(weights map[TopicKey]float64, key TopicKey) float64 {
	if w, ok := weights[key]; ok {
		return w
	}
	return e.cfg.DefaultTopicWeight
}
