package scoring

import (
	"strconv"
	"strings"

	"commitscale/internal/model"
)

// answerKind tags the shape of a raw answer value
type answerKind int

const (
	answerLiteral answerKind = iota // free text or an option's display text
	answerIndex                     // digit "1"-"5", 1-based index into options
	answerLetter                    // letter "a"-"e", key into pointsByOption
)

// RawAnswer is a raw answer value classified once on ingestion
type RawAnswer struct {
	kind  answerKind
	text  string // lower-cased original value
	index int    // 1-based, set for answerIndex only
}

// ParseAnswer classifies a raw answer value into its variant
func ParseAnswer(value string) RawAnswer {
	text := strings.ToLower(value)
	switch text {
	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(text)
		return RawAnswer{kind: answerIndex, text: text, index: n}
	case "a", "b", "c", "d", "e":
		return RawAnswer{kind: answerLetter, text: text}
	}
	return RawAnswer{kind: answerLiteral, text: text}
}

// resolver attempts one resolution rule; first success wins
type resolver func(q *model.Question, a RawAnswer) (float64, bool)

var resolvers = []resolver{
	resolveByOptionKey,
	resolveByOptionText,
	resolveByIndex,
	resolveByLetterKey,
}

// Points resolves a raw answer against a question. An answer that no rule
// can resolve scores 0; ambiguous or malformed answers never abort scoring.
func Points(q *model.Question, value string) float64 {
	return pointsFor(q, ParseAnswer(value))
}

func pointsFor(q *model.Question, a RawAnswer) float64 {
	for _, resolve := range resolvers {
		if pts, ok := resolve(q, a); ok {
			return pts
		}
	}
	return 0
}

// resolveByOptionKey looks the lower-cased value up directly in
// pointsByOption (yes/no style questions)
func resolveByOptionKey(q *model.Question, a RawAnswer) (float64, bool) {
	pts, ok := q.PointsByOption[a.text]
	return pts, ok
}

// resolveByOptionText matches the value against option display text,
// case-insensitively. If two options lower-case to the same text the first
// one wins.
func resolveByOptionText(q *model.Question, a RawAnswer) (float64, bool) {
	for _, opt := range q.Options {
		if strings.ToLower(opt.Text) == a.text {
			return opt.Points, true
		}
	}
	return 0, false
}

// resolveByIndex treats a digit answer as a 1-based index into the option
// list. Out-of-range indexes are ignored.
func resolveByIndex(q *model.Question, a RawAnswer) (float64, bool) {
	if a.kind != answerIndex {
		return 0, false
	}
	i := a.index - 1
	if i < 0 || i >= len(q.Options) {
		return 0, false
	}
	return q.Options[i].Points, true
}

// resolveByLetterKey looks a letter answer up in pointsByOption
func resolveByLetterKey(q *model.Question, a RawAnswer) (float64, bool) {
	if a.kind != answerLetter {
		return 0, false
	}
	pts, ok := q.PointsByOption[a.text]
	return pts, ok
}
