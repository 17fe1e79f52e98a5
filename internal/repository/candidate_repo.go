package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"commitscale/internal/model"
)

// CandidateRepo handles MongoDB operations for candidates
type CandidateRepo interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByEmailAndCPF(ctx context.Context, email, cpf string) (*model.Candidate, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*model.Candidate, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]*model.Candidate, error)
	RecordAccess(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status model.CandidateStatus) error
}

type candidateRepo struct {
	collection *mongo.Collection
}

// NewCandidateRepo creates a new candidate repository
func NewCandidateRepo(db *mongo.Database) CandidateRepo {
	return &candidateRepo{
		collection: db.Collection("candidates"),
	}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *model.Candidate) error {
	candidate.CreatedAt = time.Now()
	candidate.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, candidate)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		candidate.ID = oid.Hex()
	}
	return nil
}

func (r *candidateRepo) GetByEmailAndCPF(ctx context.Context, email, cpf string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.collection.FindOne(ctx, bson.M{"email": email, "cpf": cpf}).Decode(&candidate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) GetByEmailAndCompany(ctx context.Context, email, companyID string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.collection.FindOne(ctx, bson.M{"email": email, "companyId": companyID}).Decode(&candidate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) GetByCompanyID(ctx context.Context, companyID string) ([]*model.Candidate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []*model.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// RecordAccess bumps the access counter and stamps the last access time
func (r *candidateRepo) RecordAccess(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$inc": bson.M{"accessAttempts": 1},
		"$set": bson.M{"lastAccess": time.Now(), "updatedAt": time.Now()},
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *candidateRepo) SetStatus(ctx context.Context, id string, status model.CandidateStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
