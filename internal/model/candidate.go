package model

import "time"

// CandidateStatus tracks a candidate through the assessment lifecycle
type CandidateStatus string

const (
	CandidateStatusPending    CandidateStatus = "pending"
	CandidateStatusInProgress CandidateStatus = "in_progress"
	CandidateStatusCompleted  CandidateStatus = "completed"
	CandidateStatusExpired    CandidateStatus = "expired"
)

// Candidate is a test-taker registered by a company. Each candidate owns
// exactly one test id for the lifetime of the record.
type Candidate struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	Name           string          `json:"name" bson:"name"`
	Email          string          `json:"email" bson:"email"`
	CPF            string          `json:"cpf" bson:"cpf"`
	CompanyID      string          `json:"companyId" bson:"companyId"`
	TestID         string          `json:"testId" bson:"testId"`
	Status         CandidateStatus `json:"status" bson:"status"`
	ExpiresAt      time.Time       `json:"expiresAt" bson:"expiresAt"`
	LastAccess     *time.Time      `json:"lastAccess,omitempty" bson:"lastAccess,omitempty"`
	AccessAttempts int             `json:"accessAttempts" bson:"accessAttempts"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// IsExpired reports whether the candidate's validation window has closed
func (c *Candidate) IsExpired() bool {
	return c.ExpiresAt.Before(time.Now())
}
