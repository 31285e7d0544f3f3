package model

import "time"

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

// Session is one grading session. OwnerID is empty for anonymous sessions;
// those keep history for the session lifetime only and cannot save to the
// durable store.
type Session struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"ownerId,omitempty"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type InteractionStatus string

const (
	InteractionStreaming InteractionStatus = "streaming"
	InteractionCompleted InteractionStatus = "completed"
)

// PendingInteraction is the single in-flight or completed-but-uncommitted
// grading interaction of a session. It exists from submit until the user
// saves or retries. Feedback is the raw accumulated model output.
type PendingInteraction struct {
	ID           string            `json:"id"`
	SessionID    string            `json:"sessionId"`
	Question     string            `json:"question"`
	Answer       string            `json:"answer"`
	Feedback     string            `json:"feedback"`
	Scores       ScoreSet          `json:"scores"`
	Status       InteractionStatus `json:"status"`
	StartedAt    time.Time         `json:"startedAt"`
	CompletedAt  *time.Time        `json:"completedAt,omitempty"`
	RecordID     string            `json:"recordId,omitempty"`
	SessionSaved bool              `json:"sessionSaved,omitempty"`
}
