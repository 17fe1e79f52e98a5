package model

import "time"

// QuestionType identifies how a question is answered
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeLikert         QuestionType = "likert"
	QuestionTypeYesNo          QuestionType = "yes_no"
)

// Dimension is one of the three Allen & Meyer commitment components
type Dimension string

const (
	DimensionAffective   Dimension = "affective"
	DimensionNormative   Dimension = "normative"
	DimensionContinuance Dimension = "continuance"
)

// Option is a selectable answer with its point value
type Option struct {
	Text   string  `json:"text" bson:"text"`
	Points float64 `json:"points" bson:"points"`
}

// Question is an item in the assessment question bank. The ID is a stable
// UUID assigned at authoring time, not a Mongo object id.
type Question struct {
	ID             string             `json:"id" bson:"_id"`
	Text           string             `json:"text" bson:"text"`
	Type           QuestionType       `json:"type" bson:"type"`
	Dimension      Dimension          `json:"dimension,omitempty" bson:"dimension,omitempty"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Options        []Option           `json:"options,omitempty" bson:"options,omitempty"`
	PointsByOption map[string]float64 `json:"pointsByOption,omitempty" bson:"pointsByOption,omitempty"`
	Fixed          bool               `json:"fixed" bson:"fixed"` // always included in generated tests
	Active         bool               `json:"active" bson:"active"`
	Order          int                `json:"order" bson:"order"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AnswerSet maps question id to the raw answer value a candidate submitted.
// Values are free-form: an option's display text, a digit "1"-"5", a letter
// "a"-"e", or a yes/no style token.
type AnswerSet map[string]string
