package repository

import (
	"context"

	"trainer-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	return r.find(ctx, bson.M{})
}

// FindBySubjects returns questions restricted to the given subjects; an
// empty list means all subjects.
func (r *QuestionRepository) FindBySubjects(ctx context.Context, subjects []string) ([]models.Question, error) {
	if len(subjects) == 0 {
		return r.FindAll(ctx)
	}
	return r.find(ctx, bson.M{"subject": bson.M{"$in": subjects}})
}

func (r *QuestionRepository) find(ctx context.Context, filter bson.M) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

// CountBySubject returns the number of questions available per subject.
func (r *QuestionRepository) CountBySubject(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$subject", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int)
	for cur.Next(ctx) {
		var row struct {
			Subject string `bson:"_id"`
			Count   int    `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Subject] = row.Count
	}
	return counts, nil
}

// Subjects lists the distinct subjects present in the content collection.
func (r *QuestionRepository) Subjects(ctx context.Context) ([]string, error) {
	raw, err := r.Col.Distinct(ctx, "subject", bson.M{})
	if err != nil {
		return nil, err
	}
	subjects := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			subjects = append(subjects, s)
		}
	}
	return subjects, nil
}
