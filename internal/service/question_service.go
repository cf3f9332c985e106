package service

import (
	"context"

	"trainer-service/internal/models"
	"trainer-service/internal/repository"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	return s.Repo.Create(ctx, question)
}

// SubjectOverview lists available subjects with their question counts.
type SubjectOverview struct {
	Subjects       []string       `json:"subjects"`
	QuestionCounts map[string]int `json:"question_counts"`
}

func (s *QuestionService) GetSubjectOverview(ctx context.Context) (*SubjectOverview, error) {
	subjects, err := s.Repo.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.Repo.CountBySubject(ctx)
	if err != nil {
		return nil, err
	}
	return &SubjectOverview{Subjects: subjects, QuestionCounts: counts}, nil
}
