package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"commitscale/internal/service"
	"commitscale/internal/transport/rest/middleware"
)

// ResultHandler handles company-facing result endpoints
type ResultHandler struct {
	resultSvc *service.ResultService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultSvc *service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// List handles GET /v1/results
func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())

	results, err := h.resultSvc.ListByCompany(r.Context(), companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if results == nil {
		results = []service.ResultView{}
	}

	writeJSON(w, http.StatusOK, results)
}

// Get handles GET /v1/results/{testId}
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	testID := mux.Vars(r)["testId"]
	companyID := middleware.GetCompanyID(r.Context())

	result, err := h.resultSvc.GetByTestID(r.Context(), testID, companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Distribution handles GET /v1/results/distribution
func (h *ResultHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())

	dist, err := h.resultSvc.LevelDistribution(r.Context(), companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dist)
}
