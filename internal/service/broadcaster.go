package service

// Broadcaster interface for WebSocket pushes (avoids import cycle)
type Broadcaster interface {
	SendToSession(sessionID string, msgType string, payload interface{})
	DisconnectSession(sessionID string)
}
