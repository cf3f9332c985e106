package repository

import (
	"context"
	"fmt"
	"time"

	"trainer-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

// Create appends one attempt. Attempts are never updated or deleted.
func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) FindByUser(ctx context.Context, userID string) ([]models.Attempt, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *AttemptRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Attempt, error) {
	return r.find(ctx, bson.M{"session_id": sessionID})
}

func (r *AttemptRepository) find(ctx context.Context, filter bson.M) ([]models.Attempt, error) {
	cur, err := r.Col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "answered_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// DailyTrends aggregates a user's attempts per calendar day over the last
// `days` days.
func (r *AttemptRepository) DailyTrends(ctx context.Context, userID string, days int) ([]models.TrendPoint, error) {
	since := time.Now().AddDate(0, 0, -days)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id":     userID,
			"answered_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$answered_at",
			}},
			"total":    bson.M{"$sum": 1},
			"correct":  bson.M{"$sum": bson.M{"$cond": bson.A{"$correct", 1, 0}}},
			"avg_time": bson.M{"$avg": "$time_taken_seconds"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate daily trends: %w", err)
	}
	defer cur.Close(ctx)

	var points []models.TrendPoint
	for cur.Next(ctx) {
		var row struct {
			Date    string  `bson:"_id"`
			Total   int     `bson:"total"`
			Correct int     `bson:"correct"`
			AvgTime float64 `bson:"avg_time"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		point := models.TrendPoint{
			Date:    row.Date,
			Total:   row.Total,
			Correct: row.Correct,
			AvgTime: row.AvgTime,
		}
		if row.Total > 0 {
			point.Accuracy = float64(row.Correct) / float64(row.Total) * 100
		}
		points = append(points, point)
	}
	return points, nil
}
