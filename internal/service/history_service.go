package service

import (
	"context"
	"errors"

	"essaycoach/internal/cache"
	"essaycoach/internal/model"
	"essaycoach/internal/repository"
)

var ErrRecordNotFound = errors.New("record not found")

// HistoryService serves session-scoped history and durable records
type HistoryService struct {
	historyCache cache.HistoryCache
	recordRepo   repository.RecordRepo
	statsCache   cache.StatsCache
	defaultLimit int64
}

// NewHistoryService creates a new history service
func NewHistoryService(
	historyCache cache.HistoryCache,
	recordRepo repository.RecordRepo,
	statsCache cache.StatsCache,
	defaultLimit int64,
) *HistoryService {
	return &HistoryService{
		historyCache: historyCache,
		recordRepo:   recordRepo,
		statsCache:   statsCache,
		defaultLimit: defaultLimit,
	}
}

// SessionHistory returns the session's saved interactions, newest first
func (s *HistoryService) SessionHistory(ctx context.Context, sessionID string) ([]*model.Record, error) {
	records, err := s.historyCache.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// ListRecords returns a user's durable records, newest first
func (s *HistoryService) ListRecords(ctx context.Context, ownerID string, limit int64) ([]*model.Record, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.recordRepo.ListByOwner(ctx, ownerID, limit)
}

// DeleteRecord removes one durable record owned by the user
func (s *HistoryService) DeleteRecord(ctx context.Context, ownerID, recordID string) error {
	deleted, err := s.recordRepo.Delete(ctx, ownerID, recordID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}
	s.statsCache.Delete(ctx, ownerID)
	return nil
}
