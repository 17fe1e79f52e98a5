package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"commitscale/internal/model"
	"commitscale/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
)

// candidateTokenTTL bounds the window between validation and submission
const candidateTokenTTL = time.Hour

// AuthService handles company and candidate authentication
type AuthService struct {
	companyRepo repository.CompanyRepo
	jwtSecret   []byte
}

// NewAuthService creates a new auth service
func NewAuthService(companyRepo repository.CompanyRepo, jwtSecret string) *AuthService {
	return &AuthService{
		companyRepo: companyRepo,
		jwtSecret:   []byte(jwtSecret),
	}
}

// Register creates a company account. New accounts start with zero credits;
// the demo allowance or a credit purchase funds the first tests.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.LoginResponse, error) {
	existing, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	company := &model.Company{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	token, err := s.generateCompanyToken(company.ID)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{Token: token, CompanyID: company.ID}, nil
}

// Login validates company credentials and returns a dashboard token
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	company, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateCompanyToken(company.ID)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{Token: token, CompanyID: company.ID}, nil
}

func (s *AuthService) generateCompanyToken(companyID string) (string, error) {
	claims := &model.CompanyClaims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ActivateDemo grants the one-time demo credit allowance to a company
func (s *AuthService) ActivateDemo(ctx context.Context, companyID string) error {
	const demoCredits = 10
	return s.companyRepo.ActivateDemo(ctx, companyID, demoCredits)
}

// ValidateCompanyToken validates a company JWT and returns its claims
func (s *AuthService) ValidateCompanyToken(tokenString string) (*model.CompanyClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CompanyClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CompanyClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateCandidateToken creates the short-lived test-session token issued
// after candidate validation
func (s *AuthService) GenerateCandidateToken(email, companyID, testID string) (string, error) {
	claims := &model.CandidateClaims{
		Email:     email,
		CompanyID: companyID,
		TestID:    testID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(candidateTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateCandidateToken validates a candidate JWT and returns its claims
func (s *AuthService) ValidateCandidateToken(tokenString string) (*model.CandidateClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CandidateClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CandidateClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" || claims.CompanyID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
