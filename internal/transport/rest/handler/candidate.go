package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"commitscale/internal/model"
	"commitscale/internal/service"
	"commitscale/internal/transport/rest/middleware"
)

// CandidateHandler handles candidate registration and validation endpoints
type CandidateHandler struct {
	candidateSvc *service.CandidateService
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateSvc *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateSvc: candidateSvc}
}

type registerCandidateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// Register handles POST /v1/candidates
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())

	var req registerCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.CPF == "" {
		writeError(w, http.StatusBadRequest, "name, email and cpf are required")
		return
	}

	candidate, err := h.candidateSvc.Register(r.Context(), companyID, req.Name, req.Email, req.CPF)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientCred) {
			writeError(w, http.StatusPaymentRequired, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, candidate)
}

// List handles GET /v1/candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())

	candidates, err := h.candidateSvc.ListByCompany(r.Context(), companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidates == nil {
		candidates = []*model.Candidate{}
	}

	writeJSON(w, http.StatusOK, candidates)
}

// Validate handles POST /v1/candidates/validate
func (h *CandidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.candidateSvc.Validate(r.Context(), req.Email, req.CPF)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCandidateNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCandidateExpired):
			writeError(w, http.StatusGone, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
