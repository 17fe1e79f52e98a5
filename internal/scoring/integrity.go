package scoring

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"commitscale/internal/model"
)

// maxPenaltyPercent caps the score reduction applied for integrity findings
const maxPenaltyPercent = 20

// Report is the outcome of response-integrity analysis
type Report struct {
	Findings       []model.Finding
	PenaltyPercent float64
}

// Apply reduces a raw score by the report's penalty percentage. Values are
// not clamped here; clamping happens during normalization.
func (r Report) Apply(s RawScore) RawScore {
	factor := 1 - r.PenaltyPercent/100
	return RawScore{
		Total: s.Total * factor,
		Dimensions: model.DimensionScores{
			Affective:   s.Dimensions.Affective * factor,
			Normative:   s.Dimensions.Normative * factor,
			Continuance: s.Dimensions.Continuance * factor,
		},
	}
}

// Analyzer inspects the full answer set and the aggregated scores for
// response patterns that suggest low-effort or contradictory answering.
// Each rule is independent; findings accumulate.
type Analyzer struct{}

// Analyze runs every integrity rule and derives the penalty percentage
func (Analyzer) Analyze(answers model.AnswerSet, questions []*model.Question, raw RawScore) Report {
	values := orderedValues(answers)

	var findings []model.Finding
	findings = append(findings, detectMonotonic(values)...)
	findings = append(findings, detectSequential(values)...)
	findings = append(findings, detectContradictions(raw.Dimensions)...)
	findings = append(findings, detectLowVariability(answers, questions)...)

	return Report{
		Findings:       findings,
		PenaltyPercent: math.Min(float64(len(findings)*5), maxPenaltyPercent),
	}
}

// orderedValues returns answer values sorted by question id so that
// order-sensitive checks are deterministic
func orderedValues(answers model.AnswerSet) []string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = answers[id]
	}
	return values
}

// detectMonotonic flags answer sets where every value is identical
func detectMonotonic(values []string) []model.Finding {
	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}

	if len(distinct) == 1 && len(values) > 5 {
		return []model.Finding{{
			Kind:        model.FindingMonotonic,
			Severity:    model.SeverityHigh,
			Description: "all answers identical - possible inattentive responding",
		}}
	}
	return nil
}

// detectSequential flags stepwise patterns (1,2,3,4,5,1,2,3...) where every
// consecutive pair of numeric values differs by at most one step, with a
// restart of the 1-5 cycle counting as a step. Any non-numeric value breaks
// the pattern.
func detectSequential(values []string) []model.Finding {
	sequential := true
	for i := 1; i < len(values); i++ {
		prev, errPrev := strconv.Atoi(values[i-1])
		cur, errCur := strconv.Atoi(values[i])
		if errPrev != nil || errCur != nil || !stepwise(prev, cur) {
			sequential = false
			break
		}
	}

	if sequential && len(values) > 8 {
		return []model.Finding{{
			Kind:        model.FindingSequential,
			Severity:    model.SeverityHigh,
			Description: "answers follow a stepwise/sequential pattern - possible random responding",
		}}
	}
	return nil
}

func stepwise(prev, cur int) bool {
	diff := cur - prev
	if diff < 0 {
		diff = -diff
	}
	if diff <= 1 {
		return true
	}
	// wrapping from the top of the 1-5 scale back to the bottom keeps the
	// cycle going
	return (prev == 5 && cur == 1) || (prev == 1 && cur == 5)
}

// detectContradictions evaluates dimension-level score combinations that
// the commitment literature considers implausible
func detectContradictions(d model.DimensionScores) []model.Finding {
	var findings []model.Finding

	if d.Affective > 4.0 && d.Normative < 2.0 {
		findings = append(findings, model.Finding{
			Kind:        model.FindingContradiction,
			Severity:    model.SeverityMedium,
			Description: "high affective but low normative commitment - unusual pattern",
		})
	}

	if d.Continuance > 4.0 && d.Affective > 4.0 && d.Normative < 2.5 {
		findings = append(findings, model.Finding{
			Kind:        model.FindingContradiction,
			Severity:    model.SeverityLow,
			Description: "simultaneously high continuance and affective commitment",
		})
	}

	if d.Affective < 1.5 && d.Normative < 1.5 && d.Continuance < 1.5 {
		findings = append(findings, model.Finding{
			Kind:        model.FindingContradiction,
			Severity:    model.SeverityHigh,
			Description: "all dimensions uniformly extremely low - possible disengagement or random responding",
		})
	}

	return findings
}

// detectLowVariability flags answer sets whose extracted point values have a
// population standard deviation below 0.3
func detectLowVariability(answers model.AnswerSet, questions []*model.Question) []model.Finding {
	byID := indexQuestions(questions)

	points := make([]float64, 0, len(answers))
	for questionID, value := range answers {
		if q, ok := byID[questionID]; ok {
			points = append(points, Points(q, value))
		} else {
			points = append(points, 0)
		}
	}
	if len(points) == 0 {
		return nil
	}

	var sum float64
	for _, p := range points {
		sum += p
	}
	mean := sum / float64(len(points))

	var variance float64
	for _, p := range points {
		variance += (p - mean) * (p - mean)
	}
	variance /= float64(len(points))
	stddev := math.Sqrt(variance)

	if stddev < 0.3 && len(points) > 8 {
		return []model.Finding{{
			Kind:        model.FindingLowVariance,
			Severity:    model.SeverityMedium,
			Description: fmt.Sprintf("answers show very low variability (sd: %.2f)", stddev),
		}}
	}
	return nil
}
