package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"commitscale/internal/model"
)

var (
	// ErrNoCredits is returned when a credit debit would leave a negative balance
	ErrNoCredits = errors.New("company has no remaining test credits")
	// ErrDemoUsed is returned when the one-time demo allowance was already claimed
	ErrDemoUsed = errors.New("demo credits already activated")
)

// CompanyRepo handles MongoDB operations for company accounts
type CompanyRepo interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
	DebitCredit(ctx context.Context, id string) error
	AddCredits(ctx context.Context, id string, n int) error
	ActivateDemo(ctx context.Context, id string, credits int) error
}

type companyRepo struct {
	collection *mongo.Collection
}

// NewCompanyRepo creates a new company repository
func NewCompanyRepo(db *mongo.Database) CompanyRepo {
	return &companyRepo{
		collection: db.Collection("companies"),
	}
}

func (r *companyRepo) Create(ctx context.Context, company *model.Company) error {
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		company.ID = oid.Hex()
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var company model.Company
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	company.ID = id
	return &company, nil
}

func (r *companyRepo) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	var company model.Company
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// DebitCredit atomically consumes one credit; the filter guards against
// going negative under concurrent registrations
func (r *companyRepo) DebitCredit(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid, "credits": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"credits": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNoCredits
	}
	return nil
}

// ActivateDemo grants the one-time demo allowance; the filter makes the
// grant idempotent under concurrent requests
func (r *companyRepo) ActivateDemo(ctx context.Context, id string, credits int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid, "demoActivated": false}
	update := bson.M{
		"$inc": bson.M{"credits": credits},
		"$set": bson.M{"demoActivated": true, "updatedAt": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrDemoUsed
	}
	return nil
}

func (r *companyRepo) AddCredits(ctx context.Context, id string, n int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$inc": bson.M{"credits": n},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
