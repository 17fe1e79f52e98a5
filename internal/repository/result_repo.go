package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commitscale/internal/model"
)

// ErrDuplicateResult is returned when a result already exists for a test id
var ErrDuplicateResult = errors.New("a result already exists for this test")

// ResultRepo handles MongoDB operations for scoring results. The collection
// carries a unique index on testId so at most one result is stored per test.
type ResultRepo interface {
	Create(ctx context.Context, result *model.Result) error
	GetByTestID(ctx context.Context, testID string) (*model.Result, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]*model.Result, error)
	EnsureIndexes(ctx context.Context) error
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("results"),
	}
}

// EnsureIndexes creates the uniqueness constraint that makes result writes
// idempotent per test id
func (r *resultRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "testId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *resultRepo) Create(ctx context.Context, result *model.Result) error {
	result.CreatedAt = time.Now()

	inserted, err := r.collection.InsertOne(ctx, result)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateResult
	}
	if err != nil {
		return err
	}

	if oid, ok := inserted.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

func (r *resultRepo) GetByTestID(ctx context.Context, testID string) (*model.Result, error) {
	var result model.Result
	err := r.collection.FindOne(ctx, bson.M{"testId": testID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) GetByCompanyID(ctx context.Context, companyID string) ([]*model.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"companyId": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
