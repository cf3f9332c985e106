package repository

import (
	"context"
	"time"

	"trainer-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	if session.SeenQuestionIDs == nil {
		session.SeenQuestionIDs = []string{}
	}
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.StudySession, error) {
	var session models.StudySession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.StudySession
	for cur.Next(ctx) {
		var s models.StudySession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// RecordAnswer folds one answered question into the session document with a
// single update: the seen set grows via $addToSet and the correct counter
// via $inc, so two concurrent answers for the same session cannot lose
// writes to each other.
func (r *SessionRepository) RecordAnswer(ctx context.Context, sessionID, questionID string, correct bool) error {
	update := bson.M{
		"$addToSet": bson.M{"seen_question_ids": questionID},
	}
	if correct {
		update["$inc"] = bson.M{"correct_count": 1}
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": sessionID}, update)
	return err
}

// End closes the session; ending is terminal.
func (r *SessionRepository) End(ctx context.Context, sessionID string, correctCount int, endedAt time.Time) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": sessionID}, bson.M{"$set": bson.M{
		"status":        models.SessionStatusCompleted,
		"correct_count": correctCount,
		"ended_at":      endedAt,
	}})
	return err
}
