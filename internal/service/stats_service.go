package service

import (
	"context"
	"fmt"
	"sort"

	"trainer-service/internal/engine"
	"trainer-service/internal/models"
	"trainer-service/internal/repository"
)

// minAttemptsForWeakTopic keeps one unlucky answer from branding a topic
// weak in the review suggestions.
const minAttemptsForWeakTopic = 3

type StatsService struct {
	Engine      *engine.Engine
	AttemptRepo *repository.AttemptRepository
}

func NewStatsService(eng *engine.Engine, attemptRepo *repository.AttemptRepository) *StatsService {
	return &StatsService{Engine: eng, AttemptRepo: attemptRepo}
}

func (s *StatsService) GetWeakTopics(ctx context.Context, userID string, limit int) ([]models.WeakTopic, error) {
	return s.Engine.WeakTopics(ctx, userID, minAttemptsForWeakTopic, limit)
}

// GetTopicWeights exposes the live sampling weights, keyed "subject_chapter"
// for the frontend.
func (s *StatsService) GetTopicWeights(ctx context.Context, userID string) (map[string]float64, error) {
	weights, err := s.Engine.ComputeTopicWeights(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(weights))
	for key, w := range weights {
		out[topicKeyString(key)] = w
	}
	return out, nil
}

// GetTopicAnalytics groups per-chapter performance under each subject.
func (s *StatsService) GetTopicAnalytics(ctx context.Context, userID string) (map[string]models.SubjectAnalytics, error) {
	stats, err := s.Engine.TopicStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[string]models.SubjectAnalytics)
	for _, st := range stats {
		sub := bySubject[st.Subject]
		sub.Chapters = append(sub.Chapters, models.ChapterAnalytics{
			Chapter:      st.Chapter,
			ChapterTitle: st.ChapterTitle,
			Accuracy:     st.Accuracy() * 100,
			Attempts:     st.Total,
		})
		sub.TotalCorrect += st.Correct
		sub.TotalAttempts += st.Total
		bySubject[st.Subject] = sub
	}

	for subject, sub := range bySubject {
		sort.Slice(sub.Chapters, func(i, j int) bool {
			return sub.Chapters[i].Chapter < sub.Chapters[j].Chapter
		})
		if sub.TotalAttempts > 0 {
			sub.Accuracy = float64(sub.TotalCorrect) / float64(sub.TotalAttempts) * 100
		}
		bySubject[subject] = sub
	}
	return bySubject, nil
}

func (s *StatsService) GetTrends(ctx context.Context, userID string, days int) ([]models.TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	return s.AttemptRepo.DailyTrends(ctx, userID, days)
}

func topicKeyString(key engine.TopicKey) string {
	return fmt.Sprintf("%s_%d", key.Subject, key.Chapter)
}
