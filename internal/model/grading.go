package model

// GradeRequest is one answer submission. Question carries the prompt text
// verbatim; QuestionID picks one from the question bank instead. Blocking
// disables streaming and returns the completed interaction in one response.
type GradeRequest struct {
	Question   string `json:"question,omitempty"`
	QuestionID string `json:"questionId,omitempty"`
	Answer     string `json:"answer"`
	Blocking   bool   `json:"blocking,omitempty"`
}
