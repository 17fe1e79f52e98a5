package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"commitscale/internal/service"
	"commitscale/internal/transport/rest/handler"
	"commitscale/internal/transport/rest/middleware"
	"commitscale/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	CandidateService *service.CandidateService
	TestService      *service.TestService
	ScoringService   *service.ScoringService
	ResultService    *service.ResultService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	candidateHandler := handler.NewCandidateHandler(c.CandidateService)
	testHandler := handler.NewTestHandler(c.TestService, c.ScoringService)
	resultHandler := handler.NewResultHandler(c.ResultService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/candidates/validate", candidateHandler.Validate).Methods("POST", "OPTIONS")

	// WebSocket route (company token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Company routes (require company auth)
	companyRoutes := v1.NewRoute().Subrouter()
	companyRoutes.Use(authMW.RequireCompany)

	companyRoutes.HandleFunc("/companies/demo", authHandler.ActivateDemo).Methods("POST", "OPTIONS")
	companyRoutes.HandleFunc("/candidates", candidateHandler.Register).Methods("POST", "OPTIONS")
	companyRoutes.HandleFunc("/candidates", candidateHandler.List).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/results", resultHandler.List).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/results/distribution", resultHandler.Distribution).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/results/{testId}", resultHandler.Get).Methods("GET", "OPTIONS")

	// Candidate routes (require candidate session auth)
	candidateRoutes := v1.NewRoute().Subrouter()
	candidateRoutes.Use(authMW.RequireCandidate)

	candidateRoutes.HandleFunc("/tests/{testId}/questions", testHandler.GetQuestions).Methods("GET", "OPTIONS")
	candidateRoutes.HandleFunc("/tests/{testId}/submission", testHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
