package handler

import (
	"errors"
	"net/http"

	"essaycoach/internal/service"
	"essaycoach/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Create handles POST /v1/sessions
//
//	@Summary	Start a grading session
//	@Tags		sessions
//	@Success	201	{object}	service.SessionResponse
//	@Router		/v1/sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Anonymous sessions are allowed; a user token binds the session to
	// its owner
	ownerID := middleware.GetUserID(r.Context())

	resp, err := h.sessionSvc.Create(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/sessions/{id}
//
//	@Summary	Fetch session metadata
//	@Tags		sessions
//	@Param		id	path		string	true	"session ID"
//	@Success	200	{object}	model.Session
//	@Router		/v1/sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	session, err := h.sessionSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// End handles DELETE /v1/sessions/{id}
//
//	@Summary	End a session and discard its uncommitted state
//	@Tags		sessions
//	@Param		id	path	string	true	"session ID"
//	@Success	200	{object}	map[string]string
//	@Router		/v1/sessions/{id} [delete]
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	if err := h.sessionSvc.End(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

// sessionMatches rejects requests whose session token was issued for a
// different session than the one in the path
func sessionMatches(r *http.Request, id string, w http.ResponseWriter) bool {
	if middleware.GetSessionID(r.Context()) != id {
		writeError(w, http.StatusForbidden, "token does not match session")
		return false
	}
	return true
}
