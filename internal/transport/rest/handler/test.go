package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"commitscale/internal/model"
	"commitscale/internal/service"
	"commitscale/internal/transport/rest/middleware"
)

// TestHandler handles test-session endpoints used by candidates
type TestHandler struct {
	testSvc    *service.TestService
	scoringSvc *service.ScoringService
}

// NewTestHandler creates a new test handler
func NewTestHandler(testSvc *service.TestService, scoringSvc *service.ScoringService) *TestHandler {
	return &TestHandler{testSvc: testSvc, scoringSvc: scoringSvc}
}

// GetQuestions handles GET /v1/tests/{testId}/questions
func (h *TestHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	testID := mux.Vars(r)["testId"]
	if middleware.GetTestID(r.Context()) != testID {
		writeError(w, http.StatusForbidden, "token does not grant access to this test")
		return
	}

	questions, err := h.testSvc.QuestionsForTest(r.Context(), testID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

type submissionRequest struct {
	Answers model.AnswerSet `json:"answers"`
}

// Submit handles POST /v1/tests/{testId}/submission
func (h *TestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	testID := mux.Vars(r)["testId"]

	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := h.testSvc.QuestionsForTest(r.Context(), testID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary, err := h.scoringSvc.Execute(r.Context(), testID, req.Answers, questions, rawToken(r))
	if err != nil {
		writeScoringError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, summary)
}

// writeScoringError maps the pipeline's typed errors to HTTP statuses
func writeScoringError(w http.ResponseWriter, err error) {
	var (
		authErr       *service.AuthenticationError
		mismatchErr   *service.CandidateMismatchError
		incompleteErr *service.IncompleteSubmissionError
		persistErr    *service.PersistenceError
	)
	switch {
	case errors.As(err, &authErr):
		writeError(w, http.StatusUnauthorized, authErr.Error())
	case errors.As(err, &mismatchErr):
		writeError(w, http.StatusForbidden, mismatchErr.Error())
	case errors.As(err, &incompleteErr):
		writeError(w, http.StatusUnprocessableEntity, incompleteErr.Error())
	case errors.As(err, &persistErr):
		if persistErr.Reason == service.ReasonDuplicate {
			writeError(w, http.StatusConflict, persistErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, persistErr.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// rawToken returns the bearer credential so the scoring pipeline can run its
// own validation step on it
func rawToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return r.URL.Query().Get("token")
}
