package scoring

import (
	"testing"

	"commitscale/internal/model"
)

func likertQuestion(id string) *model.Question {
	return &model.Question{
		ID:   id,
		Type: model.QuestionTypeLikert,
		Options: []model.Option{
			{Text: "Strongly disagree", Points: 1},
			{Text: "Disagree", Points: 2},
			{Text: "Neutral", Points: 3},
			{Text: "Agree", Points: 4},
			{Text: "Strongly agree", Points: 5},
		},
	}
}

func TestPoints(t *testing.T) {
	likert := likertQuestion("q-likert")
	yesNo := &model.Question{
		ID:             "q-yesno",
		Type:           model.QuestionTypeYesNo,
		PointsByOption: map[string]float64{"sim": 5, "não": 1},
	}
	lettered := &model.Question{
		ID:             "q-letters",
		Type:           model.QuestionTypeMultipleChoice,
		PointsByOption: map[string]float64{"a": 1, "b": 2, "c": 3},
	}

	tests := []struct {
		name     string
		question *model.Question
		value    string
		want     float64
	}{
		{name: "direct key lookup", question: yesNo, value: "sim", want: 5},
		{name: "direct key lookup is case-insensitive", question: yesNo, value: "SIM", want: 5},
		{name: "option text match", question: likert, value: "Agree", want: 4},
		{name: "option text match is case-insensitive", question: likert, value: "strongly AGREE", want: 5},
		{name: "digit as 1-based index", question: likert, value: "5", want: 5},
		{name: "digit index out of range", question: &model.Question{ID: "q-short", Options: []model.Option{{Text: "Yes", Points: 1}}}, value: "3", want: 0},
		{name: "letter key lookup", question: lettered, value: "a", want: 1},
		{name: "letter key lookup upper case", question: lettered, value: "C", want: 3},
		{name: "letter with no mapping", question: likert, value: "e", want: 0},
		{name: "unresolvable free text", question: likert, value: "whatever", want: 0},
		{name: "empty value", question: likert, value: "", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Points(tc.question, tc.value); got != tc.want {
				t.Errorf("Points(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestPointsResolutionOrder(t *testing.T) {
	// A digit that is both a pointsByOption key and a valid index must hit
	// the direct key lookup first.
	q := &model.Question{
		ID:             "q-order",
		PointsByOption: map[string]float64{"2": 10},
		Options: []model.Option{
			{Text: "First", Points: 1},
			{Text: "Second", Points: 2},
		},
	}
	if got := Points(q, "2"); got != 10 {
		t.Errorf("expected direct key lookup to win, got %v", got)
	}

	// Two options sharing a lower-cased text: first match wins.
	dup := &model.Question{
		ID: "q-dup",
		Options: []model.Option{
			{Text: "Agree", Points: 4},
			{Text: "AGREE", Points: 5},
		},
	}
	if got := Points(dup, "agree"); got != 4 {
		t.Errorf("expected first option to win on duplicate text, got %v", got)
	}
}
