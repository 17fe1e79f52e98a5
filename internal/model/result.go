package model

import "time"

// Level is the categorical commitment classification
type Level string

const (
	LevelVeryLow  Level = "Very Low"
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelVeryHigh Level = "Very High"
)

// FindingKind identifies a suspicious response pattern
type FindingKind string

const (
	FindingMonotonic     FindingKind = "monotonic"
	FindingSequential    FindingKind = "sequential"
	FindingContradiction FindingKind = "dimensional-contradiction"
	FindingLowVariance   FindingKind = "low-variability"
)

// Severity grades an integrity finding
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Finding is one detected response-integrity issue
type Finding struct {
	Kind        FindingKind `json:"kind" bson:"kind"`
	Severity    Severity    `json:"severity" bson:"severity"`
	Description string      `json:"description" bson:"description"`
}

// DimensionScores holds one value per commitment dimension. A zero value
// means no question resolved to that dimension; the scale floor is 1.
type DimensionScores struct {
	Affective   float64 `json:"affective" bson:"affective"`
	Normative   float64 `json:"normative" bson:"normative"`
	Continuance float64 `json:"continuance" bson:"continuance"`
}

// Percentiles are population percentile ranks (0-100)
type Percentiles struct {
	Total       int `json:"total" bson:"total"`
	Affective   int `json:"affective" bson:"affective"`
	Normative   int `json:"normative" bson:"normative"`
	Continuance int `json:"continuance" bson:"continuance"`
}

// IntegrityDetail is the persisted integrity analysis
type IntegrityDetail struct {
	Total          int       `json:"total" bson:"total"`
	PenaltyPercent float64   `json:"penaltyPercent" bson:"penaltyPercent"`
	Findings       []Finding `json:"findings" bson:"findings"`
}

// ResultMetadata records scoring provenance
type ResultMetadata struct {
	EngineVersion  string    `json:"engineVersion" bson:"engineVersion"`
	ComputedAt     time.Time `json:"computedAt" bson:"computedAt"`
	TotalQuestions int       `json:"totalQuestions" bson:"totalQuestions"`
	TotalAnswered  int       `json:"totalAnswered" bson:"totalAnswered"`
}

// Result is the stored scoring outcome. The collection carries a unique
// index on testId, so at most one result exists per test.
type Result struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	TestID          string          `json:"testId" bson:"testId"`
	CandidateID     string          `json:"candidateId" bson:"candidateId"`
	CompanyID       string          `json:"companyId" bson:"companyId"`
	Answers         AnswerSet       `json:"answers" bson:"answers"`
	TotalScore      float64         `json:"totalScore" bson:"totalScore"`
	Level           Level           `json:"level" bson:"level"`
	Dimensions      DimensionScores `json:"dimensions" bson:"dimensions"`
	RawTotal        float64         `json:"rawTotal" bson:"rawTotal"`
	Percentiles     Percentiles     `json:"percentiles" bson:"percentiles"`
	Integrity       IntegrityDetail `json:"integrity" bson:"integrity"`
	Recommendations []string        `json:"recommendations" bson:"recommendations"`
	Metadata        ResultMetadata  `json:"metadata" bson:"metadata"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}

// ScoringSummary is what a submission returns to the caller and what the
// dashboard feed broadcasts
type ScoringSummary struct {
	TestID             string          `json:"testId"`
	Total              float64         `json:"total"`
	Level              Level           `json:"level"`
	Dimensions         DimensionScores `json:"dimensions"`
	Percentiles        Percentiles     `json:"percentiles"`
	InconsistencyCount int             `json:"inconsistencyCount"`
	Recommendations    []string        `json:"recommendations"`
}
