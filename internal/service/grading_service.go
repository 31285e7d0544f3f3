package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"essaycoach/internal/cache"
	"essaycoach/internal/config"
	"essaycoach/internal/grading"
	"essaycoach/internal/llm"
	"essaycoach/internal/model"
	"essaycoach/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyQuestion    = errors.New("question must not be empty")
	ErrEmptyAnswer      = errors.New("answer must not be empty")
	ErrQuestionNotFound = errors.New("question not found")
	ErrPendingExists    = errors.New("an unsaved interaction already exists, save or retry it first")
	ErrStreamInFlight   = errors.New("feedback is still streaming")
	ErrNoPending        = errors.New("no pending interaction")
	ErrSaveFailed       = errors.New("record store unavailable")
)

// GradingService runs the grade-stream-save pipeline for essay answers
type GradingService struct {
	provider     llm.Provider
	aiCfg        *config.AIConfig
	sessionSvc   *SessionService
	sessionCache cache.SessionCache
	historyCache cache.HistoryCache
	questionRepo repository.QuestionRepo
	recordRepo   repository.RecordRepo
	statsCache   cache.StatsCache
	broadcaster  Broadcaster
}

// NewGradingService creates a new grading service
func NewGradingService(
	provider llm.Provider,
	aiCfg *config.AIConfig,
	sessionSvc *SessionService,
	sessionCache cache.SessionCache,
	historyCache cache.HistoryCache,
	questionRepo repository.QuestionRepo,
	recordRepo repository.RecordRepo,
	statsCache cache.StatsCache,
) *GradingService {
	return &GradingService{
		provider:     provider,
		aiCfg:        aiCfg,
		sessionSvc:   sessionSvc,
		sessionCache: sessionCache,
		historyCache: historyCache,
		questionRepo: questionRepo,
		recordRepo:   recordRepo,
		statsCache:   statsCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *GradingService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Grade submits one question/answer pair for feedback. The default mode
// streams fragments over the session socket and returns the streaming
// pending interaction immediately; blocking mode returns the completed
// one. Empty inputs are rejected before any model call is made.
func (s *GradingService) Grade(ctx context.Context, sessionID string, req *model.GradeRequest) (*model.PendingInteraction, error) {
	if _, err := s.sessionSvc.GetActive(ctx, sessionID); err != nil {
		return nil, err
	}

	question, err := s.resolveQuestion(ctx, req)
	if err != nil {
		return nil, err
	}
	answer := strings.TrimSpace(req.Answer)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	existing, err := s.sessionCache.GetPending(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == model.InteractionStreaming {
			return nil, ErrStreamInFlight
		}
		return nil, ErrPendingExists
	}

	pending := &model.PendingInteraction{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Question:  question,
		Answer:    answer,
		Status:    model.InteractionStreaming,
		StartedAt: time.Now(),
	}
	if err := s.sessionCache.SetPending(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store pending interaction: %w", err)
	}
	s.sessionCache.DeleteFeedback(ctx, sessionID)

	if req.Blocking {
		return s.gradeBlocking(ctx, pending)
	}

	// The goroutine gets its own copy so the returned value stays stable
	// while fragments arrive
	snapshot := *pending
	go s.gradeStreaming(context.Background(), &snapshot)
	return pending, nil
}

// Retry re-runs generation for the pending submission, replacing its
// feedback and scores. Refused while a stream is still in flight.
func (s *GradingService) Retry(ctx context.Context, sessionID string, blocking bool) (*model.PendingInteraction, error) {
	if _, err := s.sessionSvc.GetActive(ctx, sessionID); err != nil {
		return nil, err
	}

	pending, err := s.sessionCache.GetPending(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrNoPending
	}
	if pending.Status == model.InteractionStreaming {
		return nil, ErrStreamInFlight
	}

	pending.Status = model.InteractionStreaming
	pending.StartedAt = time.Now()
	pending.CompletedAt = nil
	pending.Feedback = ""
	pending.Scores = nil

	if err := s.sessionCache.SetPending(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store pending interaction: %w", err)
	}
	s.sessionCache.DeleteFeedback(ctx, sessionID)

	if blocking {
		return s.gradeBlocking(ctx, pending)
	}

	snapshot := *pending
	go s.gradeStreaming(context.Background(), &snapshot)
	return pending, nil
}

// GetPending returns the session's pending interaction, or nil when there
// is none. While streaming, Feedback carries whatever has arrived so far.
func (s *GradingService) GetPending(ctx context.Context, sessionID string) (*model.PendingInteraction, error) {
	pending, err := s.sessionCache.GetPending(ctx, sessionID)
	if err != nil || pending == nil {
		return pending, err
	}

	if pending.Status == model.InteractionStreaming {
		feedback, err := s.sessionCache.GetFeedback(ctx, sessionID)
		if err == nil {
			pending.Feedback = feedback
		}
	}
	return pending, nil
}

// Save commits the completed pending interaction: durably for owned
// sessions, and always into the session history. The pending slot is
// cleared only after every store succeeds, so a failed save keeps the
// interaction and a re-save replaces rather than duplicates.
func (s *GradingService) Save(ctx context.Context, sessionID string) (*model.Record, error) {
	session, err := s.sessionSvc.GetActive(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pending, err := s.sessionCache.GetPending(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrNoPending
	}
	if pending.Status == model.InteractionStreaming {
		return nil, ErrStreamInFlight
	}

	// Fix the record ID on the first attempt so re-saves hit the same
	// document
	if pending.RecordID == "" {
		pending.RecordID = uuid.New().String()
		if err := s.sessionCache.SetPending(ctx, pending); err != nil {
			return nil, err
		}
	}

	createdAt := time.Now()
	if pending.CompletedAt != nil {
		createdAt = *pending.CompletedAt
	}

	record := &model.Record{
		ID:        pending.RecordID,
		OwnerID:   session.OwnerID,
		Question:  pending.Question,
		Answer:    pending.Answer,
		Feedback:  pending.Feedback,
		Scores:    pending.Scores,
		CreatedAt: createdAt,
	}

	if session.OwnerID != "" {
		if err := s.recordRepo.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
		}
	}

	if !pending.SessionSaved {
		if err := s.historyCache.Append(ctx, sessionID, record); err != nil {
			return nil, fmt.Errorf("failed to append session history: %w", err)
		}
		pending.SessionSaved = true
		if err := s.sessionCache.SetPending(ctx, pending); err != nil {
			return nil, err
		}
	}

	s.sessionCache.DeletePending(ctx, sessionID)
	s.sessionCache.DeleteFeedback(ctx, sessionID)
	if session.OwnerID != "" {
		s.statsCache.Delete(ctx, session.OwnerID)
	}

	return record, nil
}

func (s *GradingService) resolveQuestion(ctx context.Context, req *model.GradeRequest) (string, error) {
	if req.QuestionID != "" {
		question, err := s.questionRepo.GetByID(ctx, req.QuestionID)
		if err != nil {
			return "", err
		}
		if question == nil {
			return "", ErrQuestionNotFound
		}
		return strings.TrimSpace(question.Text), nil
	}
	return strings.TrimSpace(req.Question), nil
}

func (s *GradingService) buildRequest(pending *model.PendingInteraction) llm.Request {
	return llm.Request{
		Prompt:      grading.BuildGradingPrompt(pending.Question, pending.Answer),
		Model:       s.aiCfg.Models.Grading,
		MaxTokens:   s.aiCfg.MaxTokens,
		Temperature: s.aiCfg.Temperature,
	}
}

func (s *GradingService) gradeBlocking(ctx context.Context, pending *model.PendingInteraction) (*model.PendingInteraction, error) {
	var raw string
	resp, err := s.provider.Generate(ctx, s.buildRequest(pending))
	if err != nil {
		raw = grading.ErrorMarker(err)
	} else {
		raw = resp.Text
	}
	return s.finish(ctx, pending, raw)
}

func (s *GradingService) gradeStreaming(ctx context.Context, pending *model.PendingInteraction) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered from panic while streaming feedback: %v", r)
		}
	}()

	fragments, err := s.provider.GenerateStream(ctx, s.buildRequest(pending))
	if err != nil {
		// The failure surfaces inline as feedback, never as a lost round
		marker := grading.ErrorMarker(err)
		s.pushFragment(ctx, pending.SessionID, marker)
		if _, err := s.finish(ctx, pending, marker); err != nil {
			log.Printf("failed to finish interaction %s: %v", pending.ID, err)
		}
		return
	}

	raw := grading.Consume(fragments, func(fragment string) {
		s.pushFragment(ctx, pending.SessionID, fragment)
	})

	if _, err := s.finish(ctx, pending, raw); err != nil {
		log.Printf("failed to finish interaction %s: %v", pending.ID, err)
	}
}

func (s *GradingService) pushFragment(ctx context.Context, sessionID, fragment string) {
	if err := s.sessionCache.AppendFeedback(ctx, sessionID, fragment); err != nil {
		log.Printf("failed to append feedback fragment: %v", err)
	}
	if s.broadcaster != nil {
		s.broadcaster.SendToSession(sessionID, "feedback_fragment", map[string]string{"text": fragment})
	}
}

// finish seals the interaction: the score block is lifted out of the raw
// text and the remaining prose becomes the displayed feedback. A raw text
// without a block completes with absent scores.
func (s *GradingService) finish(ctx context.Context, pending *model.PendingInteraction, raw string) (*model.PendingInteraction, error) {
	now := time.Now()
	pending.Feedback = grading.SanitizeFeedback(raw)
	pending.Scores = grading.ExtractScores(raw)
	pending.Status = model.InteractionCompleted
	pending.CompletedAt = &now

	if err := s.sessionCache.SetPending(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store completed interaction: %w", err)
	}
	s.sessionCache.DeleteFeedback(ctx, pending.SessionID)

	if s.broadcaster != nil {
		s.broadcaster.SendToSession(pending.SessionID, "feedback_completed", pending)
	}
	return pending, nil
}
