package service

import "fmt"

// Reason codes carried by pipeline errors so callers can render a precise
// response without parsing messages
const (
	ReasonTokenMissing   = "token_missing"
	ReasonTokenInvalid   = "token_invalid"
	ReasonTokenExpired   = "token_expired"
	ReasonNotFound       = "candidate_not_found"
	ReasonTestMismatch   = "test_mismatch"
	ReasonWindowClosed   = "validation_window_closed"
	ReasonTooFewAnswers  = "too_few_answers"
	ReasonDuplicate      = "duplicate_result"
	ReasonStorageFailure = "storage_failure"
)

// AuthenticationError means the credential was missing, malformed or expired
type AuthenticationError struct {
	Reason  string
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (%s): %s", e.Reason, e.Message)
}

// CandidateMismatchError means no candidate matched the credential, or the
// candidate's assigned test differs from the submitted one
type CandidateMismatchError struct {
	Reason  string
	Message string
}

func (e *CandidateMismatchError) Error() string {
	return fmt.Sprintf("candidate mismatch (%s): %s", e.Reason, e.Message)
}

// IncompleteSubmissionError means too few of the supplied questions were
// answered
type IncompleteSubmissionError struct {
	Answered int
	Total    int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("incomplete submission: %d/%d questions answered, minimum 80%%", e.Answered, e.Total)
}

// PersistenceError means the fully computed result could not be stored. The
// scoring itself is deterministic, so the caller may retry the save without
// re-running the computation.
type PersistenceError struct {
	Reason string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("result persistence failed (%s): %v", e.Reason, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
