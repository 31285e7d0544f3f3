package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"essaycoach/internal/service"

	"github.com/gorilla/mux"
)

// maxImageBytes caps decoded OCR uploads at 8 MiB
const maxImageBytes = 8 << 20

// OCRHandler handles answer image transcription
type OCRHandler struct {
	ocrSvc *service.OCRService
}

// NewOCRHandler creates a new OCR handler. ocrSvc may be nil when no
// vision-capable key is configured.
func NewOCRHandler(ocrSvc *service.OCRService) *OCRHandler {
	return &OCRHandler{ocrSvc: ocrSvc}
}

// OCRRequest is the request body for transcribing an answer image
type OCRRequest struct {
	Image string `json:"image"`
	Mime  string `json:"mime"`
}

// Extract handles POST /v1/sessions/{id}/ocr
//
//	@Summary	Transcribe a photographed answer into text
//	@Tags		grading
//	@Param		id		path		string		true	"session ID"
//	@Param		body	body		OCRRequest	true	"base64 image"
//	@Success	200		{object}	map[string]string
//	@Router		/v1/sessions/{id}/ocr [post]
func (h *OCRHandler) Extract(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sessionMatches(r, id, w) {
		return
	}

	if h.ocrSvc == nil {
		writeError(w, http.StatusServiceUnavailable, "image transcription is not configured")
		return
	}

	var req OCRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	imageBytes, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, "image must be base64 encoded")
		return
	}
	if len(imageBytes) == 0 || len(imageBytes) > maxImageBytes {
		writeError(w, http.StatusBadRequest, "image is empty or too large")
		return
	}

	mime := req.Mime
	if mime == "" {
		mime = "image/jpeg"
	}

	text := h.ocrSvc.ExtractText(r.Context(), imageBytes, mime)
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
