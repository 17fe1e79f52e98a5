package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"commitscale/internal/model"
)

func newCandidateFixture(t *testing.T) (*CandidateService, *fakeCandidateRepo, *fakeCompanyRepo, string) {
	t.Helper()

	candidates := newFakeCandidateRepo()
	companies := newFakeCompanyRepo()
	authSvc := NewAuthService(companies, testSecret)

	reg, err := authSvc.Register(context.Background(), "Acme", "hr@acme.example", "pw")
	if err != nil {
		t.Fatalf("register company: %v", err)
	}
	if err := authSvc.ActivateDemo(context.Background(), reg.CompanyID); err != nil {
		t.Fatalf("activate demo: %v", err)
	}

	return NewCandidateService(candidates, companies, authSvc), candidates, companies, reg.CompanyID
}

func TestCandidateRegisterConsumesCredit(t *testing.T) {
	ctx := context.Background()
	svc, _, companies, companyID := newCandidateFixture(t)

	candidate, err := svc.Register(ctx, companyID, "Alice", "alice@example.com", "12345678901")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if candidate.TestID == "" {
		t.Error("candidate has no test id")
	}
	if candidate.Status != model.CandidateStatusPending {
		t.Errorf("status = %q, want pending", candidate.Status)
	}
	if got := companies.companies[companyID].Credits; got != 9 {
		t.Errorf("credits = %d, want 9", got)
	}
}

func TestCandidateRegisterWithoutCredits(t *testing.T) {
	ctx := context.Background()
	svc, _, companies, companyID := newCandidateFixture(t)
	companies.companies[companyID].Credits = 0

	if _, err := svc.Register(ctx, companyID, "Alice", "alice@example.com", "12345678901"); !errors.Is(err, ErrInsufficientCred) {
		t.Errorf("err = %v, want ErrInsufficientCred", err)
	}
}

func TestValidateIssuesSessionToken(t *testing.T) {
	ctx := context.Background()
	svc, candidates, _, companyID := newCandidateFixture(t)

	candidate, err := svc.Register(ctx, companyID, "Alice", "alice@example.com", "12345678901")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.Validate(ctx, "alice@example.com", "12345678901")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if resp.TestID != candidate.TestID {
		t.Errorf("test id = %q, want %q", resp.TestID, candidate.TestID)
	}
	if resp.Token == "" {
		t.Error("no session token issued")
	}

	stored := candidates.candidates[candidate.ID]
	if stored.Status != model.CandidateStatusInProgress {
		t.Errorf("status after validation = %q, want in_progress", stored.Status)
	}
	if stored.AccessAttempts != 1 {
		t.Errorf("access attempts = %d, want 1", stored.AccessAttempts)
	}
}

func TestValidateUnknownCandidate(t *testing.T) {
	svc, _, _, _ := newCandidateFixture(t)

	if _, err := svc.Validate(context.Background(), "ghost@example.com", "000"); !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("err = %v, want ErrCandidateNotFound", err)
	}
}

func TestValidateExpiredCandidate(t *testing.T) {
	ctx := context.Background()
	svc, candidates, _, companyID := newCandidateFixture(t)

	candidate, err := svc.Register(ctx, companyID, "Alice", "alice@example.com", "12345678901")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	candidates.candidates[candidate.ID].ExpiresAt = time.Now().Add(-time.Minute)

	if _, err := svc.Validate(ctx, "alice@example.com", "12345678901"); !errors.Is(err, ErrCandidateExpired) {
		t.Errorf("err = %v, want ErrCandidateExpired", err)
	}
}
