package middleware

import (
	"context"
	"net/http"
	"strings"

	"commitscale/internal/service"
)

type contextKey string

const (
	CompanyIDKey      contextKey = "companyId"
	CandidateEmailKey contextKey = "candidateEmail"
	TestIDKey         contextKey = "testId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCompany validates a company JWT from the Authorization header
func (m *AuthMiddleware) RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateCompanyToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), CompanyIDKey, claims.CompanyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCandidate validates a candidate session JWT from the Authorization
// header or query param
func (m *AuthMiddleware) RequireCandidate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// Try query param for WebSocket
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateCandidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, CandidateEmailKey, claims.Email)
		ctx = context.WithValue(ctx, CompanyIDKey, claims.CompanyID)
		ctx = context.WithValue(ctx, TestIDKey, claims.TestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCompanyID extracts the company id from context
func GetCompanyID(ctx context.Context) string {
	if v := ctx.Value(CompanyIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetCandidateEmail extracts the candidate email from context
func GetCandidateEmail(ctx context.Context) string {
	if v := ctx.Value(CandidateEmailKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetTestID extracts the test id from context
func GetTestID(ctx context.Context) string {
	if v := ctx.Value(TestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
