package service

import (
	"context"
	"errors"
	"log"
	"time"

	"commitscale/internal/cache"
	"commitscale/internal/model"
	"commitscale/internal/repository"
	"commitscale/internal/scoring"
)

// MsgResultScored is broadcast to a company dashboard after each scoring
const MsgResultScored = "result_scored"

// ScoringService runs the commitment scoring pipeline for one submission:
// credential validation, candidate resolution, completeness check, the pure
// scoring computation, persistence and dashboard fan-out. Submissions for
// different test ids may run fully in parallel; the service holds no
// per-submission state.
type ScoringService struct {
	engine        *scoring.Engine
	authSvc       *AuthService
	candidateRepo repository.CandidateRepo
	resultRepo    repository.ResultRepo
	dashboard     cache.DashboardCache
	broadcaster   Broadcaster
}

// NewScoringService creates a new scoring service
func NewScoringService(engine *scoring.Engine, authSvc *AuthService, candidateRepo repository.CandidateRepo, resultRepo repository.ResultRepo, dashboard cache.DashboardCache) *ScoringService {
	return &ScoringService{
		engine:        engine,
		authSvc:       authSvc,
		candidateRepo: candidateRepo,
		resultRepo:    resultRepo,
		dashboard:     dashboard,
	}
}

// SetBroadcaster injects the dashboard feed (the websocket hub implements it)
func (s *ScoringService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Execute scores a submission end to end. Validation failures abort before
// any computation; once computation succeeds only persistence can fail, and
// the caller may retry the submission without side effects since the stored
// result is unique per test id.
func (s *ScoringService) Execute(ctx context.Context, testID string, answers model.AnswerSet, questions []*model.Question, credential string) (*model.ScoringSummary, error) {
	candidate, err := s.validateCandidate(ctx, testID, credential)
	if err != nil {
		return nil, err
	}

	answered := countAnswered(answers, questions)
	if answered*5 < len(questions)*4 {
		return nil, &IncompleteSubmissionError{Answered: answered, Total: len(questions)}
	}

	out := s.engine.Score(answers, questions)

	result := &model.Result{
		TestID:      testID,
		CandidateID: candidate.ID,
		CompanyID:   candidate.CompanyID,
		Answers:     answers,
		TotalScore:  out.Normalized.Total,
		Level:       out.Level,
		Dimensions:  out.Normalized.Dimensions,
		RawTotal:    out.Raw.Total,
		Percentiles: out.Normalized.Percentiles,
		Integrity: model.IntegrityDetail{
			Total:          len(out.Report.Findings),
			PenaltyPercent: out.Report.PenaltyPercent,
			Findings:       out.Report.Findings,
		},
		Recommendations: out.Recommendations,
		Metadata: model.ResultMetadata{
			EngineVersion:  scoring.Version,
			ComputedAt:     time.Now(),
			TotalQuestions: len(questions),
			TotalAnswered:  answered,
		},
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		reason := ReasonStorageFailure
		if errors.Is(err, repository.ErrDuplicateResult) {
			reason = ReasonDuplicate
		}
		return nil, &PersistenceError{Reason: reason, Err: err}
	}

	summary := &model.ScoringSummary{
		TestID:             testID,
		Total:              out.Normalized.Total,
		Level:              out.Level,
		Dimensions:         out.Normalized.Dimensions,
		Percentiles:        out.Normalized.Percentiles,
		InconsistencyCount: len(out.Report.Findings),
		Recommendations:    out.Recommendations,
	}
	s.afterPersist(ctx, candidate, summary)

	return summary, nil
}

// validateCandidate enforces the pipeline preconditions: a live credential
// and a candidate whose assigned test matches the submission
func (s *ScoringService) validateCandidate(ctx context.Context, testID, credential string) (*model.Candidate, error) {
	if credential == "" {
		return nil, &AuthenticationError{Reason: ReasonTokenMissing, Message: "credential is required"}
	}

	claims, err := s.authSvc.ValidateCandidateToken(credential)
	if err != nil {
		return nil, &AuthenticationError{Reason: ReasonTokenInvalid, Message: "credential is invalid or expired"}
	}

	candidate, err := s.candidateRepo.GetByEmailAndCompany(ctx, claims.Email, claims.CompanyID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &CandidateMismatchError{Reason: ReasonNotFound, Message: "no candidate matches the credential"}
	}
	if claims.TestID != testID || candidate.TestID != testID {
		return nil, &CandidateMismatchError{Reason: ReasonTestMismatch, Message: "submitted test does not belong to the candidate"}
	}
	return candidate, nil
}

// afterPersist runs best-effort side effects; the stored result is already
// durable so failures here only degrade the dashboard
func (s *ScoringService) afterPersist(ctx context.Context, candidate *model.Candidate, summary *model.ScoringSummary) {
	if err := s.candidateRepo.SetStatus(ctx, candidate.ID, model.CandidateStatusCompleted); err != nil {
		log.Printf("failed to mark candidate %s completed: %v", candidate.ID, err)
	}
	if err := s.dashboard.IncrementLevel(ctx, candidate.CompanyID, summary.Level); err != nil {
		log.Printf("failed to update level distribution for company %s: %v", candidate.CompanyID, err)
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToCompany(candidate.CompanyID, MsgResultScored, summary)
	}
}

func countAnswered(answers model.AnswerSet, questions []*model.Question) int {
	answered := 0
	for _, q := range questions {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}
	return answered
}
