package scoring

import (
	"testing"

	"commitscale/internal/model"
)

func TestMapperDimension(t *testing.T) {
	mapper := NewMapper(DefaultLegacyTable())

	tests := []struct {
		name     string
		question *model.Question
		want     model.Dimension
		wantOK   bool
	}{
		{
			name:     "explicit dimension wins",
			question: &model.Question{ID: "x", Dimension: model.DimensionAffective, Tags: []string{"normative"}},
			want:     model.DimensionAffective,
			wantOK:   true,
		},
		{
			name:     "explicit unknown dimension resolves nothing",
			question: &model.Question{ID: "x", Dimension: "engagement", Tags: []string{"normative"}},
			want:     "engagement",
			wantOK:   false,
		},
		{
			name:     "first dimension tag matches",
			question: &model.Question{ID: "x", Tags: []string{"likert", "Continuance", "affective"}},
			want:     model.DimensionContinuance,
			wantOK:   true,
		},
		{
			name:     "legacy table fallback",
			question: &model.Question{ID: "c9bf4b18-3873-4a1a-bda4-868cc3f7679a"},
			want:     model.DimensionAffective,
			wantOK:   true,
		},
		{
			name:     "unresolved",
			question: &model.Question{ID: "not-in-table", Tags: []string{"misc"}},
			want:     "",
			wantOK:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := mapper.Dimension(tc.question)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Dimension() = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
