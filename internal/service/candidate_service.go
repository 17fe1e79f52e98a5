package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"commitscale/internal/model"
	"commitscale/internal/repository"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found or data does not match")
	ErrCandidateExpired  = errors.New("candidate validation window has expired")
	ErrInsufficientCred  = errors.New("insufficient test credits")
)

// validationWindow is how long a registered candidate may take the test
const validationWindow = 7 * 24 * time.Hour

// CandidateService handles candidate registration and validation
type CandidateService struct {
	candidateRepo repository.CandidateRepo
	companyRepo   repository.CompanyRepo
	authSvc       *AuthService
}

// NewCandidateService creates a new candidate service
func NewCandidateService(candidateRepo repository.CandidateRepo, companyRepo repository.CompanyRepo, authSvc *AuthService) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		companyRepo:   companyRepo,
		authSvc:       authSvc,
	}
}

// Register creates a candidate for a company, consuming one test credit and
// assigning a fresh test id
func (s *CandidateService) Register(ctx context.Context, companyID, name, email, cpf string) (*model.Candidate, error) {
	if err := s.companyRepo.DebitCredit(ctx, companyID); err != nil {
		if errors.Is(err, repository.ErrNoCredits) {
			return nil, ErrInsufficientCred
		}
		return nil, err
	}

	candidate := &model.Candidate{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		CompanyID: companyID,
		TestID:    uuid.New().String(),
		Status:    model.CandidateStatusPending,
		ExpiresAt: time.Now().Add(validationWindow),
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		// Registration failed after the debit; hand the credit back.
		if refundErr := s.companyRepo.AddCredits(ctx, companyID, 1); refundErr != nil {
			return nil, errors.Join(err, refundErr)
		}
		return nil, err
	}
	return candidate, nil
}

// Validate matches a candidate by email and CPF and issues the short-lived
// test-session token
func (s *CandidateService) Validate(ctx context.Context, email, cpf string) (*model.ValidateResponse, error) {
	candidate, err := s.candidateRepo.GetByEmailAndCPF(ctx, email, cpf)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	if candidate.IsExpired() {
		return nil, ErrCandidateExpired
	}

	token, err := s.authSvc.GenerateCandidateToken(candidate.Email, candidate.CompanyID, candidate.TestID)
	if err != nil {
		return nil, err
	}

	if err := s.candidateRepo.RecordAccess(ctx, candidate.ID); err != nil {
		return nil, err
	}
	if candidate.Status == model.CandidateStatusPending {
		if err := s.candidateRepo.SetStatus(ctx, candidate.ID, model.CandidateStatusInProgress); err != nil {
			return nil, err
		}
	}

	return &model.ValidateResponse{Token: token, TestID: candidate.TestID}, nil
}

// ListByCompany returns all candidates registered by a company
func (s *CandidateService) ListByCompany(ctx context.Context, companyID string) ([]*model.Candidate, error) {
	return s.candidateRepo.GetByCompanyID(ctx, companyID)
}
