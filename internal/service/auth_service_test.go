package service

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := NewAuthService(repo, testSecret)

	reg, err := svc.Register(ctx, "Acme HR", "hr@acme.example", "s3cret-pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	stored := repo.companies[reg.CompanyID]
	if stored == nil {
		t.Fatal("company was not persisted")
	}
	if stored.Credits != 0 {
		t.Errorf("new companies start with 0 credits, got %d", stored.Credits)
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}

	resp, err := svc.Login(ctx, "hr@acme.example", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.CompanyID != reg.CompanyID {
		t.Errorf("login company id = %q, want %q", resp.CompanyID, reg.CompanyID)
	}

	claims, err := svc.ValidateCompanyToken(resp.Token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.CompanyID != reg.CompanyID {
		t.Errorf("claims company id = %q, want %q", claims.CompanyID, reg.CompanyID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeCompanyRepo(), testSecret)

	if _, err := svc.Register(ctx, "Acme HR", "hr@acme.example", "s3cret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "hr@acme.example", "wrong"},
		{"unknown email", "nobody@acme.example", "s3cret-pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeCompanyRepo(), testSecret)

	if _, err := svc.Register(ctx, "Acme HR", "hr@acme.example", "pw"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Acme Again", "hr@acme.example", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestActivateDemoIsOneShot(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := NewAuthService(repo, testSecret)

	reg, err := svc.Register(ctx, "Acme", "a@b.c", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ActivateDemo(ctx, reg.CompanyID); err != nil {
		t.Fatalf("first activation failed: %v", err)
	}
	if got := repo.companies[reg.CompanyID].Credits; got != 10 {
		t.Errorf("credits after demo = %d, want 10", got)
	}
	if err := svc.ActivateDemo(ctx, reg.CompanyID); err == nil {
		t.Error("second activation should fail")
	}
}

func TestCandidateTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeCompanyRepo(), testSecret)

	token, err := svc.GenerateCandidateToken("alice@example.com", "co-1", "test-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateCandidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.CompanyID != "co-1" || claims.TestID != "test-1" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := svc.ValidateCandidateToken("not-a-token"); err == nil {
		t.Error("garbage token should not validate")
	}
}
