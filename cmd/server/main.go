package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commitscale/config"
	"commitscale/internal/cache"
	"commitscale/internal/repository"
	"commitscale/internal/scoring"
	"commitscale/internal/service"
	"commitscale/internal/transport/rest"
	"commitscale/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	questionRepo := repository.NewQuestionRepo(db)
	candidateRepo := repository.NewCandidateRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	resultRepo := repository.NewResultRepo(db)

	if err := resultRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to ensure result indexes:", err)
	}

	// Initialize caches
	questionCache := cache.NewQuestionCache(rdb)
	dashboardCache := cache.NewDashboardCache(rdb)

	// Initialize services
	engine := scoring.NewEngine(scoring.DefaultLegacyTable())
	authSvc := service.NewAuthService(companyRepo, cfg.JWTSecret)
	candidateSvc := service.NewCandidateService(candidateRepo, companyRepo, authSvc)
	testSvc := service.NewTestService(questionRepo, questionCache, cfg.RandomQuestions)
	scoringSvc := service.NewScoringService(engine, authSvc, candidateRepo, resultRepo, dashboardCache)
	resultSvc := service.NewResultService(resultRepo, candidateRepo, dashboardCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	scoringSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		CandidateService: candidateSvc,
		TestService:      testSvc,
		ScoringService:   scoringSvc,
		ResultService:    resultSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/companies/demo")
		log.Println("  POST/GET /v1/candidates")
		log.Println("  POST /v1/candidates/validate")
		log.Println("  GET  /v1/tests/{testId}/questions")
		log.Println("  POST /v1/tests/{testId}/submission")
		log.Println("  GET  /v1/results")
		log.Println("  WS   /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
