package service

import (
	"context"
	"fmt"
	"time"

	"trainer-service/internal/engine"
	"trainer-service/internal/event"
	"trainer-service/internal/models"
)

// SessionStore is the session persistence the service needs; satisfied by
// repository.SessionRepository.
type SessionStore interface {
	Create(ctx context.Context, session *models.StudySession) error
	FindByID(ctx context.Context, id string) (*models.StudySession, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]models.StudySession, error)
	RecordAnswer(ctx context.Context, sessionID, questionID string, correct bool) error
	End(ctx context.Context, sessionID string, correctCount int, endedAt time.Time) error
}

// QuestionFinder resolves question content; satisfied by
// repository.QuestionRepository.
type QuestionFinder interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
}

// AttemptFinder reads a session's attempt history; satisfied by
// repository.AttemptRepository.
type AttemptFinder interface {
	FindBySession(ctx context.Context, sessionID string) ([]models.Attempt, error)
}

type SessionService struct {
	Repo         SessionStore
	QuestionRepo QuestionFinder
	AttemptRepo  AttemptFinder
	Engine       *engine.Engine
	Publisher    *event.Publisher
}

func NewSessionService(
	repo SessionStore,
	questionRepo QuestionFinder,
	attemptRepo AttemptFinder,
	eng *engine.Engine,
	publisher *event.Publisher,
) *SessionService {
	return &SessionService{
		Repo:         repo,
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		Engine:       eng,
		Publisher:    publisher,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, session *models.StudySession) error {
	if session.Mode == "" {
		session.Mode = models.SessionModeMixed
	}
	session.Status = models.SessionStatusActive
	session.CorrectCount = 0
	session.SeenQuestionIDs = []string{}

	if err := s.Repo.Create(ctx, session); err != nil {
		return err
	}
	if s.Publisher != nil {
		s.Publisher.Publish("trainer.session.started", map[string]interface{}{
			"session_id": session.ID,
			"user_id":    session.UserID,
			"mode":       session.Mode,
		})
	}
	return nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.StudySession, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *SessionService) GetSessionAttempts(ctx context.Context, sessionID string) ([]models.Attempt, error) {
	return s.AttemptRepo.FindBySession(ctx, sessionID)
}

// NextQuestion asks the engine for the next item in this session. The
// session's own seen set drives the anti-repeat exclusion; subjects default
// to the session's filter.
func (s *SessionService) NextQuestion(ctx context.Context, sessionID string, subjects []string) (*models.Question, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, engine.ErrNotFound
	}
	if len(subjects) == 0 {
		subjects = session.Subjects
	}
	return s.Engine.SelectNextQuestion(ctx, session.UserID, session.SeenSet(), subjects)
}

// AnswerResult is everything revealed after an answer: correctness, the
// explanation with its citation, the refreshed topic aggregate, and the
// session's running progress.
type AnswerResult struct {
	Correct         bool                   `json:"correct"`
	CorrectAnswer   string                 `json:"correct_answer"`
	SelectedAnswer  string                 `json:"selected_answer"`
	Explanation     string                 `json:"explanation"`
	Citation        models.Citation        `json:"citation"`
	TopicStat       TopicStatView          `json:"topic_stat"`
	SessionProgress models.SessionProgress `json:"session_progress"`
}

// TopicStatView is the JSON shape of an engine topic aggregate.
type TopicStatView struct {
	Subject      string  `json:"subject"`
	Chapter      int     `json:"chapter"`
	ChapterTitle string  `json:"chapter_title"`
	Correct      int     `json:"correct"`
	Total        int     `json:"total"`
	Accuracy     float64 `json:"accuracy"`
}

// SubmitAnswer grades a selection, records the attempt through the engine,
// and folds the answer into the session document. The attempt write and its
// aggregate effect are one logical operation; a failure anywhere reports the
// whole submission as failed.
func (s *SessionService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID, selectedAnswer string, timeTaken float64, timedOut bool) (*AnswerResult, error) {
	question, err := s.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, engine.ErrNotFound
	}
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, engine.ErrNotFound
	}

	correct := selectedAnswer == question.CorrectAnswer

	attempt := &models.Attempt{
		UserID:           userID,
		QuestionID:       question.ID,
		SessionID:        sessionID,
		Subject:          question.Subject,
		Chapter:          question.Chapter,
		ChapterTitle:     question.ChapterTitle,
		Correct:          correct,
		SelectedAnswer:   selectedAnswer,
		TimeTakenSeconds: timeTaken,
		TimedOut:         timedOut,
	}

	// The session bookkeeping lands before the attempt: re-submitting after
	// a failed attempt write re-adds the question to the seen set
	// idempotently instead of double-recording the attempt. The session's
	// correct_count is advisory mid-session and recomputed from attempts
	// when the session ends.
	if err := s.Repo.RecordAnswer(ctx, sessionID, question.ID, correct); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	stat, err := s.Engine.RecordAttempt(ctx, attempt)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	sessionAttempts, err := s.AttemptRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress := buildProgress(sessionAttempts, session.TotalQuestions)

	if s.Publisher != nil {
		s.Publisher.Publish("trainer.attempt.recorded", map[string]interface{}{
			"user_id":     userID,
			"session_id":  sessionID,
			"question_id": question.ID,
			"correct":     correct,
		})
	}

	return &AnswerResult{
		Correct:        correct,
		CorrectAnswer:  question.CorrectAnswer,
		SelectedAnswer: selectedAnswer,
		Explanation:    question.Explanation,
		Citation:       question.Cite(),
		TopicStat: TopicStatView{
			Subject:      stat.Subject,
			Chapter:      stat.Chapter,
			ChapterTitle: stat.ChapterTitle,
			Correct:      stat.Correct,
			Total:        stat.Total,
			Accuracy:     stat.Accuracy(),
		},
		SessionProgress: progress,
	}, nil
}

// EndSession closes the session and returns its summary.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) (*models.SessionSummary, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, engine.ErrNotFound
	}

	attempts, err := s.AttemptRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	correctCount := 0
	totalTime := 0.0
	bySubject := make(map[string]models.SubjectBreakdown)
	for _, a := range attempts {
		b := bySubject[a.Subject]
		b.Total++
		if a.Correct {
			b.Correct++
			correctCount++
		}
		bySubject[a.Subject] = b
		totalTime += a.TimeTakenSeconds
	}

	endedAt := time.Now()
	if err := s.Repo.End(ctx, sessionID, correctCount, endedAt); err != nil {
		return nil, err
	}

	summary := &models.SessionSummary{
		SessionID:      sessionID,
		TotalQuestions: len(attempts),
		CorrectCount:   correctCount,
		BySubject:      bySubject,
		EndedAt:        endedAt,
	}
	if len(attempts) > 0 {
		summary.Accuracy = float64(correctCount) / float64(len(attempts)) * 100
		summary.AvgTimeSeconds = totalTime / float64(len(attempts))
	}

	if s.Publisher != nil {
		s.Publisher.Publish("trainer.session.ended", map[string]interface{}{
			"session_id": sessionID,
			"user_id":    session.UserID,
			"correct":    correctCount,
			"total":      len(attempts),
		})
	}
	return summary, nil
}

// GetPacing compares the running session against the target pace.
func (s *SessionService) GetPacing(ctx context.Context, sessionID string) (*engine.PacingInfo, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, engine.ErrNotFound
	}

	elapsed := time.Since(session.StartedAt)
	info := s.Engine.GetPacingInfo(elapsed, len(session.SeenQuestionIDs), session.TotalQuestions)
	return &info, nil
}

func (s *SessionService) GetUserSessions(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	return s.Repo.FindByUser(ctx, userID, limit)
}

func buildProgress(attempts []models.Attempt, total int) models.SessionProgress {
	progress := models.SessionProgress{
		Answered: len(attempts),
		Total:    total,
	}
	for _, a := range attempts {
		if a.Correct {
			progress.Correct++
		}
	}
	if progress.Answered > 0 {
		progress.Accuracy = float64(progress.Correct) / float64(progress.Answered) * 100
	}
	return progress
}
