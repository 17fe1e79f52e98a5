package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commitscale/internal/model"
)

// QuestionRepo handles MongoDB operations for the question bank
type QuestionRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]*model.Question, error)
	GetFixed(ctx context.Context) ([]*model.Question, error)
	SampleActive(ctx context.Context, n int) ([]*model.Question, error)
	Upsert(ctx context.Context, question *model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetFixed(ctx context.Context) ([]*model.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"fixed": true, "active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SampleActive draws n random non-fixed active questions using $sample
func (r *questionRepo) SampleActive(ctx context.Context, n int) ([]*model.Question, error) {
	if n <= 0 {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"fixed": false, "active": true}}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) Upsert(ctx context.Context, question *model.Question) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": question.ID}, question, opts)
	return err
}
