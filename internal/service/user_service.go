package service

import (
	"context"

	"trainer-service/internal/models"
	"trainer-service/internal/repository"
)

type UserService struct {
	Repo     *repository.UserRepository
	Attempts *repository.AttemptRepository
	Sessions *repository.SessionRepository
}

func NewUserService(
	repo *repository.UserRepository,
	attempts *repository.AttemptRepository,
	sessions *repository.SessionRepository,
) *UserService {
	return &UserService{Repo: repo, Attempts: attempts, Sessions: sessions}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	return s.Repo.Create(ctx, user)
}

// GetUserStats computes lifetime statistics from the attempt and session
// history. Nothing is cached; the history is the single source of truth.
func (s *UserService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	attempts, err := s.Attempts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.Sessions.FindByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{
		TotalAttempts: len(attempts),
		TotalSessions: len(sessions),
	}
	subjects := make(map[string]bool)
	totalTime := 0.0
	for _, a := range attempts {
		if a.Correct {
			stats.TotalCorrect++
		}
		totalTime += a.TimeTakenSeconds
		subjects[a.Subject] = true
	}
	stats.SubjectsStudied = len(subjects)
	if len(attempts) > 0 {
		stats.Accuracy = float64(stats.TotalCorrect) / float64(len(attempts)) * 100
		stats.AvgTimeSeconds = totalTime / float64(len(attempts))
	}
	return stats, nil
}
