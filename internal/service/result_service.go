package service

import (
	"context"
	"time"

	"commitscale/internal/cache"
	"commitscale/internal/model"
	"commitscale/internal/repository"
)

// CandidateSummary is the identity slice of a result view
type CandidateSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// ResultView pairs a stored result with the candidate it belongs to
type ResultView struct {
	Candidate          CandidateSummary      `json:"candidate"`
	TestID             string                `json:"testId"`
	Total              float64               `json:"total"`
	Level              model.Level           `json:"level"`
	Dimensions         model.DimensionScores `json:"dimensions"`
	Percentiles        model.Percentiles     `json:"percentiles"`
	InconsistencyCount int                   `json:"inconsistencyCount"`
	Recommendations    []string              `json:"recommendations"`
	SubmittedAt        time.Time             `json:"submittedAt"`
}

// ResultService serves scored results to company dashboards
type ResultService struct {
	resultRepo    repository.ResultRepo
	candidateRepo repository.CandidateRepo
	dashboard     cache.DashboardCache
}

// NewResultService creates a new result service
func NewResultService(resultRepo repository.ResultRepo, candidateRepo repository.CandidateRepo, dashboard cache.DashboardCache) *ResultService {
	return &ResultService{
		resultRepo:    resultRepo,
		candidateRepo: candidateRepo,
		dashboard:     dashboard,
	}
}

// ListByCompany returns all of a company's results joined with candidate
// identity, newest first
func (s *ResultService) ListByCompany(ctx context.Context, companyID string) ([]ResultView, error) {
	results, err := s.resultRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	views := make([]ResultView, 0, len(results))
	for _, r := range results {
		view := ResultView{
			TestID:             r.TestID,
			Total:              r.TotalScore,
			Level:              r.Level,
			Dimensions:         r.Dimensions,
			Percentiles:        r.Percentiles,
			InconsistencyCount: r.Integrity.Total,
			Recommendations:    r.Recommendations,
			SubmittedAt:        r.CreatedAt,
		}
		if c, ok := byID[r.CandidateID]; ok {
			view.Candidate = CandidateSummary{Name: c.Name, Email: c.Email, CPF: c.CPF}
		}
		views = append(views, view)
	}
	return views, nil
}

// GetByTestID returns one full result, scoped to the owning company
func (s *ResultService) GetByTestID(ctx context.Context, testID, companyID string) (*model.Result, error) {
	result, err := s.resultRepo.GetByTestID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if result == nil || result.CompanyID != companyID {
		return nil, nil
	}
	return result, nil
}

// LevelDistribution returns the cached per-level result counts
func (s *ResultService) LevelDistribution(ctx context.Context, companyID string) (map[model.Level]int, error) {
	return s.dashboard.GetLevelDistribution(ctx, companyID)
}
