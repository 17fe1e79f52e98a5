package service

import (
	"context"
	"log"

	"commitscale/internal/cache"
	"commitscale/internal/model"
	"commitscale/internal/repository"
)

// TestService assembles and serves per-test question sets: the fixed core
// questionnaire plus a random draw from the active bank
type TestService struct {
	questionRepo  repository.QuestionRepo
	questionCache cache.QuestionCache
	randomCount   int
}

// NewTestService creates a new test service
func NewTestService(questionRepo repository.QuestionRepo, questionCache cache.QuestionCache, randomCount int) *TestService {
	return &TestService{
		questionRepo:  questionRepo,
		questionCache: questionCache,
		randomCount:   randomCount,
	}
}

// QuestionsForTest returns the question set for a test id. The random draw
// happens once; the chosen ids are cached so the scoring pipeline later sees
// exactly the questions the candidate saw.
func (s *TestService) QuestionsForTest(ctx context.Context, testID string) ([]*model.Question, error) {
	ids, err := s.questionCache.GetTest(ctx, testID)
	if err != nil {
		log.Printf("question cache read failed for test %s: %v", testID, err)
	}
	if ids != nil {
		return s.hydrate(ctx, ids)
	}

	fixed, err := s.questionRepo.GetFixed(ctx)
	if err != nil {
		return nil, err
	}
	random, err := s.questionRepo.SampleActive(ctx, s.randomCount)
	if err != nil {
		return nil, err
	}

	questions := append(fixed, random...)
	ids = make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	if err := s.questionCache.SetTest(ctx, testID, ids); err != nil {
		log.Printf("question cache write failed for test %s: %v", testID, err)
	}
	return questions, nil
}

// hydrate loads question documents by id and restores the cached order
func (s *TestService) hydrate(ctx context.Context, ids []string) ([]*model.Question, error) {
	loaded, err := s.questionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Question, len(loaded))
	for _, q := range loaded {
		byID[q.ID] = q
	}

	// Questions deleted from the bank since assembly are dropped silently
	questions := make([]*model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}
