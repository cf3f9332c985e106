package repository

import (
	"context"

	"trainer-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FlashcardRepository struct {
	Col *mongo.Collection
}

func NewFlashcardRepository(db *mongo.Database) *FlashcardRepository {
	col := db.Collection("flashcard_states")
	// One row per (user, card): the unique index turns a racing first
	// review into a duplicate-key conflict instead of a twin row.
	col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "card_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &FlashcardRepository{Col: col}
}

// FindOne returns the review state for a (user, card) pair, or nil when the
// card has never been reviewed.
func (r *FlashcardRepository) FindOne(ctx context.Context, userID, cardID string) (*models.FlashcardReviewState, error) {
	var state models.FlashcardReviewState
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "card_id": cardID}).Decode(&state)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *FlashcardRepository) FindByUser(ctx context.Context, userID string) ([]models.FlashcardReviewState, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var states []models.FlashcardReviewState
	for cur.Next(ctx) {
		var st models.FlashcardReviewState
		if err := cur.Decode(&st); err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, nil
}

// Upsert writes the full state row keyed by (user, card), conditional on
// the row still holding prevReviewCount reviews. The row is created on the
// first review (prevReviewCount 0) and replaced in place on every later
// one; there is never more than one row per pair. It returns false when a
// concurrent review already advanced the row, in which case nothing was
// written and the caller must re-read.
func (r *FlashcardRepository) Upsert(ctx context.Context, state *models.FlashcardReviewState, prevReviewCount int) (bool, error) {
	filter := bson.M{
		"user_id":      state.UserID,
		"card_id":      state.CardID,
		"review_count": prevReviewCount,
	}
	update := bson.M{"$set": bson.M{
		"user_id":        state.UserID,
		"card_id":        state.CardID,
		"subject":        state.Subject,
		"streak":         state.Streak,
		"wrong_count":    state.WrongCount,
		"last_wrong_at":  state.LastWrongAt,
		"interval_days":  state.IntervalDays,
		"due_at":         state.DueAt,
		"tier":           state.Tier,
		"review_count":   state.ReviewCount,
		"last_review_at": state.LastReviewAt,
	}}

	res, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(prevReviewCount == 0))
	if mongo.IsDuplicateKeyError(err) {
		// A racing first review inserted the row after our read.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0 || res.UpsertedCount > 0, nil
}
