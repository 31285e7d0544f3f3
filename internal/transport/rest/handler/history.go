package handler

import (
	"errors"
	"net/http"
	"strconv"

	"essaycoach/internal/service"
	"essaycoach/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// HistoryHandler handles session history, durable records, and stats
type HistoryHandler struct {
	historySvc *service.HistoryService
	statsSvc   *service.StatsService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historySvc *service.HistoryService, statsSvc *service.StatsService) *HistoryHandler {
	return &HistoryHandler{
		historySvc: historySvc,
		statsSvc:   statsSvc,
	}
}

// SessionHistory handles GET /v1/sessions/{id}/history
//
//	@Summary	List the session's saved interactions, newest first
//	@Tags		history
//	@Param		id	path		string	true	"session ID"
//	@Success	200	{object}	map[string]interface{}
//	@Router		/v1/sessions/{id}/history [get]
func (h *HistoryHandler) SessionHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	records, err := h.historySvc.SessionHistory(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// ListRecords handles GET /v1/records
//
//	@Summary	List the user's durable records, newest first
//	@Tags		records
//	@Param		limit	query		int	false	"max records"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/v1/records [get]
func (h *HistoryHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var limit int64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.historySvc.ListRecords(r.Context(), ownerID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// DeleteRecord handles DELETE /v1/records/{id}
//
//	@Summary	Delete one durable record
//	@Tags		records
//	@Param		id	path	string	true	"record ID"
//	@Success	200	{object}	map[string]string
//	@Router		/v1/records/{id} [delete]
func (h *HistoryHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	recordID := mux.Vars(r)["id"]

	if err := h.historySvc.DeleteRecord(r.Context(), ownerID, recordID); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Stats handles GET /v1/records/stats
//
//	@Summary	Aggregated per-category averages and recent totals
//	@Tags		records
//	@Success	200	{object}	model.RecordStats
//	@Router		/v1/records/stats [get]
func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	stats, err := h.statsSvc.GetStats(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
