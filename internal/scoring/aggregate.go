package scoring

import "commitscale/internal/model"

// RawScore holds the unadjusted per-dimension averages and the grand mean
type RawScore struct {
	Total      float64
	Dimensions model.DimensionScores
}

// Aggregator combines answer extraction and dimension resolution into raw
// totals and per-dimension averages
type Aggregator struct {
	mapper *Mapper
}

// NewAggregator creates an aggregator using the given dimension mapper
func NewAggregator(mapper *Mapper) *Aggregator {
	return &Aggregator{mapper: mapper}
}

type bucket struct {
	sum   float64
	count int
}

func (b *bucket) add(points float64) {
	b.sum += points
	b.count++
}

func (b *bucket) mean() float64 {
	if b.count == 0 {
		return 0
	}
	return b.sum / float64(b.count)
}

// Aggregate computes the raw score for an answer set against a question
// list. Answers for questions not in the list are skipped; the caller may
// pass a partial question set.
func (a *Aggregator) Aggregate(answers model.AnswerSet, questions []*model.Question) RawScore {
	byID := indexQuestions(questions)

	var total bucket
	dims := map[model.Dimension]*bucket{
		model.DimensionAffective:   {},
		model.DimensionNormative:   {},
		model.DimensionContinuance: {},
	}

	for questionID, value := range answers {
		q, ok := byID[questionID]
		if !ok {
			continue
		}

		points := Points(q, value)
		total.add(points)

		if d, ok := a.mapper.Dimension(q); ok {
			dims[d].add(points)
		}
	}

	return RawScore{
		Total: total.mean(),
		Dimensions: model.DimensionScores{
			Affective:   dims[model.DimensionAffective].mean(),
			Normative:   dims[model.DimensionNormative].mean(),
			Continuance: dims[model.DimensionContinuance].mean(),
		},
	}
}

func indexQuestions(questions []*model.Question) map[string]*model.Question {
	byID := make(map[string]*model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID
}
