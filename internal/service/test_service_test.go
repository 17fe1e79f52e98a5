package service

import (
	"context"
	"fmt"
	"testing"

	"commitscale/internal/model"
)

type fakeQuestionRepo struct {
	fixed   []*model.Question
	pool    []*model.Question
	samples int
}

func (r *fakeQuestionRepo) GetByIDs(_ context.Context, ids []string) ([]*model.Question, error) {
	all := append(append([]*model.Question{}, r.fixed...), r.pool...)
	var out []*model.Question
	for _, q := range all {
		for _, id := range ids {
			if q.ID == id {
				out = append(out, q)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) GetFixed(_ context.Context) ([]*model.Question, error) {
	return r.fixed, nil
}

func (r *fakeQuestionRepo) SampleActive(_ context.Context, n int) ([]*model.Question, error) {
	r.samples++
	if n > len(r.pool) {
		n = len(r.pool)
	}
	return r.pool[:n], nil
}

func (r *fakeQuestionRepo) Upsert(_ context.Context, q *model.Question) error {
	r.pool = append(r.pool, q)
	return nil
}

type fakeQuestionCache struct {
	sets map[string][]string
}

func newFakeQuestionCache() *fakeQuestionCache {
	return &fakeQuestionCache{sets: map[string][]string{}}
}

func (c *fakeQuestionCache) SetTest(_ context.Context, testID string, ids []string) error {
	c.sets[testID] = ids
	return nil
}

func (c *fakeQuestionCache) GetTest(_ context.Context, testID string) ([]string, error) {
	return c.sets[testID], nil
}

func (c *fakeQuestionCache) DeleteTest(_ context.Context, testID string) error {
	delete(c.sets, testID)
	return nil
}

func questionBank(fixed, pool int) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{}
	for i := 0; i < fixed; i++ {
		repo.fixed = append(repo.fixed, &model.Question{ID: fmt.Sprintf("fixed-%d", i), Fixed: true, Active: true})
	}
	for i := 0; i < pool; i++ {
		repo.pool = append(repo.pool, &model.Question{ID: fmt.Sprintf("pool-%d", i), Active: true})
	}
	return repo
}

func TestQuestionsForTestAssemblesOnce(t *testing.T) {
	ctx := context.Background()
	repo := questionBank(3, 10)
	cache := newFakeQuestionCache()
	svc := NewTestService(repo, cache, 5)

	first, err := svc.QuestionsForTest(ctx, "test-1")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(first) != 8 {
		t.Fatalf("question count = %d, want 8", len(first))
	}
	if first[0].ID != "fixed-0" {
		t.Errorf("fixed questions must come first, got %s", first[0].ID)
	}

	second, err := svc.QuestionsForTest(ctx, "test-1")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if repo.samples != 1 {
		t.Errorf("random draw ran %d times, want 1", repo.samples)
	}
	if len(second) != len(first) {
		t.Fatalf("reload count = %d, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].ID != first[i].ID {
			t.Errorf("order changed at %d: %s vs %s", i, second[i].ID, first[i].ID)
		}
	}
}

func TestQuestionsForTestDropsDeletedQuestions(t *testing.T) {
	ctx := context.Background()
	repo := questionBank(2, 4)
	cache := newFakeQuestionCache()
	svc := NewTestService(repo, cache, 2)

	if _, err := svc.QuestionsForTest(ctx, "test-1"); err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	// Remove one cached question from the bank
	repo.pool = repo.pool[1:]

	questions, err := svc.QuestionsForTest(ctx, "test-1")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("question count after deletion = %d, want 3", len(questions))
	}
}
