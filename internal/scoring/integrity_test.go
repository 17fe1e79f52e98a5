package scoring

import (
	"fmt"
	"testing"

	"commitscale/internal/model"
)

func hasFinding(findings []model.Finding, kind model.FindingKind) bool {
	for _, f := range findings {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

func likertBank(n int) ([]*model.Question, []string) {
	dimensions := []model.Dimension{
		model.DimensionAffective,
		model.DimensionNormative,
		model.DimensionContinuance,
	}
	questions := make([]*model.Question, n)
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("q%02d", i+1)
		q := likertQuestion(id)
		q.Dimension = dimensions[i%len(dimensions)]
		questions[i] = q
		ids[i] = id
	}
	return questions, ids
}

func TestAnalyzeMonotonic(t *testing.T) {
	var analyzer Analyzer

	questions, ids := likertBank(6)
	answers := model.AnswerSet{}
	for _, id := range ids {
		answers[id] = "3"
	}

	report := analyzer.Analyze(answers, questions, RawScore{})
	if !hasFinding(report.Findings, model.FindingMonotonic) {
		t.Fatalf("expected monotonic finding, got %+v", report.Findings)
	}

	// Five identical answers are below the threshold.
	questions, ids = likertBank(5)
	answers = model.AnswerSet{}
	for _, id := range ids {
		answers[id] = "3"
	}
	report = analyzer.Analyze(answers, questions, RawScore{})
	if hasFinding(report.Findings, model.FindingMonotonic) {
		t.Fatalf("expected no monotonic finding for 5 answers, got %+v", report.Findings)
	}
}

func TestAnalyzeSequential(t *testing.T) {
	var analyzer Analyzer

	questions, ids := likertBank(9)
	pattern := []string{"1", "2", "3", "4", "5", "1", "2", "3", "4"}
	answers := model.AnswerSet{}
	for i, id := range ids {
		answers[id] = pattern[i]
	}

	report := analyzer.Analyze(answers, questions, RawScore{})
	if !hasFinding(report.Findings, model.FindingSequential) {
		t.Fatalf("expected sequential finding, got %+v", report.Findings)
	}

	// A non-numeric value breaks the pattern.
	answers[ids[4]] = "agree"
	report = analyzer.Analyze(answers, questions, RawScore{})
	if hasFinding(report.Findings, model.FindingSequential) {
		t.Fatalf("expected no sequential finding with non-numeric value, got %+v", report.Findings)
	}

	// A jump of more than one step breaks the pattern.
	answers[ids[4]] = "5"
	answers[ids[5]] = "3"
	report = analyzer.Analyze(answers, questions, RawScore{})
	if hasFinding(report.Findings, model.FindingSequential) {
		t.Fatalf("expected no sequential finding with a 2-step jump, got %+v", report.Findings)
	}
}

func TestAnalyzeContradictions(t *testing.T) {
	var analyzer Analyzer

	tests := []struct {
		name       string
		dimensions model.DimensionScores
		severities []model.Severity
	}{
		{
			name:       "high affective low normative",
			dimensions: model.DimensionScores{Affective: 4.5, Normative: 1.5, Continuance: 3.0},
			severities: []model.Severity{model.SeverityMedium},
		},
		{
			name:       "high continuance and affective",
			dimensions: model.DimensionScores{Affective: 4.5, Normative: 2.2, Continuance: 4.5},
			severities: []model.Severity{model.SeverityLow},
		},
		{
			name:       "uniformly extremely low",
			dimensions: model.DimensionScores{Affective: 1.2, Normative: 1.0, Continuance: 1.4},
			severities: []model.Severity{model.SeverityHigh},
		},
		{
			name:       "both affective rules fire",
			dimensions: model.DimensionScores{Affective: 4.5, Normative: 1.5, Continuance: 4.5},
			severities: []model.Severity{model.SeverityMedium, model.SeverityLow},
		},
		{
			name:       "plausible profile",
			dimensions: model.DimensionScores{Affective: 3.5, Normative: 3.2, Continuance: 3.0},
			severities: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := analyzer.Analyze(model.AnswerSet{}, nil, RawScore{Dimensions: tc.dimensions})
			if len(report.Findings) != len(tc.severities) {
				t.Fatalf("expected %d findings, got %+v", len(tc.severities), report.Findings)
			}
			for i, sev := range tc.severities {
				if report.Findings[i].Kind != model.FindingContradiction || report.Findings[i].Severity != sev {
					t.Errorf("finding %d = %+v, want contradiction/%s", i, report.Findings[i], sev)
				}
			}
		})
	}
}

func TestAnalyzeLowVariability(t *testing.T) {
	var analyzer Analyzer

	// Twelve answers mapping to an almost constant point value. One textual
	// answer breaks the sequential check while extracting the same points.
	questions, ids := likertBank(12)
	answers := model.AnswerSet{}
	for _, id := range ids {
		answers[id] = "5"
	}
	answers[ids[3]] = "Strongly agree"

	report := analyzer.Analyze(answers, questions, RawScore{})
	if !hasFinding(report.Findings, model.FindingLowVariance) {
		t.Fatalf("expected low-variability finding, got %+v", report.Findings)
	}
	if hasFinding(report.Findings, model.FindingSequential) {
		t.Fatalf("sequential should be broken by the textual answer: %+v", report.Findings)
	}
	if hasFinding(report.Findings, model.FindingMonotonic) {
		t.Fatalf("monotonic needs identical raw values: %+v", report.Findings)
	}
}

func TestPenaltyPercent(t *testing.T) {
	var analyzer Analyzer

	// Nine identical numeric answers trigger monotonic, sequential and
	// low-variability together with the uniformly-low contradiction.
	questions, ids := likertBank(9)
	answers := model.AnswerSet{}
	for _, id := range ids {
		answers[id] = "1"
	}
	raw := RawScore{
		Total:      1,
		Dimensions: model.DimensionScores{Affective: 1, Normative: 1, Continuance: 1},
	}

	report := analyzer.Analyze(answers, questions, raw)
	if len(report.Findings) != 4 {
		t.Fatalf("expected 4 findings, got %+v", report.Findings)
	}
	if report.PenaltyPercent != 20 {
		t.Fatalf("expected capped penalty 20, got %v", report.PenaltyPercent)
	}
}

func TestReportApply(t *testing.T) {
	report := Report{PenaltyPercent: 10}
	got := report.Apply(RawScore{
		Total:      4.0,
		Dimensions: model.DimensionScores{Affective: 4.0, Normative: 2.0, Continuance: 3.0},
	})

	if got.Total != 3.6 {
		t.Errorf("Total = %v, want 3.6", got.Total)
	}
	if got.Dimensions.Normative != 1.8 {
		t.Errorf("Normative = %v, want 1.8", got.Dimensions.Normative)
	}
}
