package handler

import (
	"net/http"
	"strconv"

	"essaycoach/internal/service"
	"essaycoach/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// QuestionHandler handles the question bank and suggestion endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// List handles GET /v1/questions
//
//	@Summary	List bank questions
//	@Tags		questions
//	@Param		topic	query		string	false	"topic filter"
//	@Param		limit	query		int		false	"max questions"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/v1/questions [get]
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")

	var limit int64 = 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	questions, err := h.questionSvc.List(r.Context(), topic, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// Get handles GET /v1/questions/{id}
//
//	@Summary	Fetch one bank question
//	@Tags		questions
//	@Param		id	path		string	true	"question ID"
//	@Success	200	{object}	model.Question
//	@Router		/v1/questions/{id} [get]
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	question, err := h.questionSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// Suggest handles POST /v1/questions/suggest
//
//	@Summary	Generate practice questions targeting the user's weak categories
//	@Tags		questions
//	@Success	200	{object}	map[string]interface{}
//	@Router		/v1/questions/suggest [post]
func (h *QuestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	suggestions, err := h.questionSvc.Suggest(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": suggestions})
}
