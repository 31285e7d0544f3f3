package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"essaycoach/internal/cache"
	"essaycoach/internal/model"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session has ended")
)

// SessionService handles grading session lifecycle
type SessionService struct {
	sessionCache cache.SessionCache
	historyCache cache.HistoryCache
	authSvc      *AuthService
	broadcaster  Broadcaster
	ttl          time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionCache cache.SessionCache,
	historyCache cache.HistoryCache,
	authSvc *AuthService,
	ttl time.Duration,
) *SessionService {
	return &SessionService{
		sessionCache: sessionCache,
		historyCache: historyCache,
		authSvc:      authSvc,
		ttl:          ttl,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SessionResponse pairs a created session with its scoped token
type SessionResponse struct {
	Session *model.Session `json:"session"`
	Token   string         `json:"token"`
}

// Create starts a new grading session. OwnerID is empty for anonymous use;
// such sessions cannot commit records to the durable store.
func (s *SessionService) Create(ctx context.Context, ownerID string) (*SessionResponse, error) {
	session := &model.Session{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Status:    model.SessionActive,
		CreatedAt: time.Now(),
	}

	if err := s.sessionCache.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}

	token, err := s.authSvc.GenerateSessionToken(session.ID, ownerID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &SessionResponse{Session: session, Token: token}, nil
}

// Get retrieves a session by ID
func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	return s.sessionCache.GetSession(ctx, id)
}

// GetActive retrieves a session and fails if it is missing or ended
func (s *SessionService) GetActive(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.sessionCache.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Status != model.SessionActive {
		return nil, ErrSessionEnded
	}
	return session, nil
}

// End closes a session, discards its uncommitted state, and disconnects
// any live sockets
func (s *SessionService) End(ctx context.Context, id string) error {
	session, err := s.sessionCache.GetSession(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	session.Status = model.SessionEnded
	if err := s.sessionCache.SetSession(ctx, session); err != nil {
		return err
	}

	// Uncommitted work and session-scoped history go with the session
	s.sessionCache.DeletePending(ctx, id)
	s.sessionCache.DeleteFeedback(ctx, id)
	s.historyCache.Delete(ctx, id)

	if s.broadcaster != nil {
		s.broadcaster.SendToSession(id, "session_ended", map[string]string{"sessionId": id})
		s.broadcaster.DisconnectSession(id)
	}

	return nil
}
