package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"essaycoach/internal/model"
	"essaycoach/internal/service"

	"github.com/gorilla/mux"
)

// GradingHandler handles the grade, save, and retry endpoints
type GradingHandler struct {
	gradingSvc *service.GradingService
}

// NewGradingHandler creates a new grading handler
func NewGradingHandler(gradingSvc *service.GradingService) *GradingHandler {
	return &GradingHandler{gradingSvc: gradingSvc}
}

// Grade handles POST /v1/sessions/{id}/grade
//
//	@Summary	Submit an answer for feedback
//	@Tags		grading
//	@Param		id		path		string				true	"session ID"
//	@Param		body	body		model.GradeRequest	true	"submission"
//	@Success	200		{object}	model.PendingInteraction	"blocking mode"
//	@Success	202		{object}	model.PendingInteraction	"streaming started"
//	@Router		/v1/sessions/{id}/grade [post]
func (h *GradingHandler) Grade(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	var req model.GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pending, err := h.gradingSvc.Grade(r.Context(), id, &req)
	if err != nil {
		writeError(w, gradingStatus(err), err.Error())
		return
	}

	if req.Blocking {
		writeJSON(w, http.StatusOK, pending)
		return
	}
	writeJSON(w, http.StatusAccepted, pending)
}

// Save handles POST /v1/sessions/{id}/save
//
//	@Summary	Commit the pending interaction
//	@Tags		grading
//	@Param		id	path		string	true	"session ID"
//	@Success	200	{object}	model.Record
//	@Router		/v1/sessions/{id}/save [post]
func (h *GradingHandler) Save(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	record, err := h.gradingSvc.Save(r.Context(), id)
	if err != nil {
		writeError(w, gradingStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Retry handles POST /v1/sessions/{id}/retry
//
//	@Summary	Regenerate feedback for the pending submission
//	@Tags		grading
//	@Param		id	path		string	true	"session ID"
//	@Success	202	{object}	model.PendingInteraction
//	@Router		/v1/sessions/{id}/retry [post]
func (h *GradingHandler) Retry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	blocking := r.URL.Query().Get("blocking") == "true"

	pending, err := h.gradingSvc.Retry(r.Context(), id, blocking)
	if err != nil {
		writeError(w, gradingStatus(err), err.Error())
		return
	}

	if blocking {
		writeJSON(w, http.StatusOK, pending)
		return
	}
	writeJSON(w, http.StatusAccepted, pending)
}

// GetPending handles GET /v1/sessions/{id}/pending
//
//	@Summary	Fetch the pending interaction, if any
//	@Tags		grading
//	@Param		id	path		string	true	"session ID"
//	@Success	200	{object}	model.PendingInteraction
//	@Router		/v1/sessions/{id}/pending [get]
func (h *GradingHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	pending, err := h.gradingSvc.GetPending(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pending == nil {
		writeError(w, http.StatusNotFound, "no pending interaction")
		return
	}

	writeJSON(w, http.StatusOK, pending)
}

// gradingStatus maps grading pipeline errors to HTTP status codes
func gradingStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSessionEnded),
		errors.Is(err, service.ErrPendingExists),
		errors.Is(err, service.ErrStreamInFlight),
		errors.Is(err, service.ErrNoPending):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyQuestion), errors.Is(err, service.ErrEmptyAnswer):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSaveFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
