package scoring

import "commitscale/internal/model"

// Version is stamped into result provenance metadata
const Version = "2.0"

// Outcome bundles every stage of a scoring computation
type Outcome struct {
	Raw             RawScore
	Penalized       RawScore
	Report          Report
	Normalized      NormalizedScore
	Level           model.Level
	Recommendations []string
}

// Engine runs the full scoring computation for one submission: aggregation,
// integrity analysis, penalty, normalization, classification and
// recommendation generation. It holds no mutable state and is safe for
// concurrent use; given the same inputs the outcome is identical on every
// call.
type Engine struct {
	aggregator *Aggregator
	analyzer   Analyzer
}

// NewEngine creates an engine backed by the given legacy dimension table
func NewEngine(legacy LegacyDimensionTable) *Engine {
	return &Engine{
		aggregator: NewAggregator(NewMapper(legacy)),
	}
}

// Score computes the complete outcome for an answer set. It never fails:
// unresolvable answers score 0 and empty inputs degrade to zeroed scores.
func (e *Engine) Score(answers model.AnswerSet, questions []*model.Question) Outcome {
	raw := e.aggregator.Aggregate(answers, questions)
	report := e.analyzer.Analyze(answers, questions, raw)
	penalized := report.Apply(raw)
	normalized := Normalize(penalized)

	return Outcome{
		Raw:             raw,
		Penalized:       penalized,
		Report:          report,
		Normalized:      normalized,
		Level:           Classify(normalized.Total),
		Recommendations: Recommend(normalized, report),
	}
}
