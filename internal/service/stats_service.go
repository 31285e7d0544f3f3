package service

import (
	"context"
	"time"

	"essaycoach/internal/cache"
	"essaycoach/internal/model"
	"essaycoach/internal/repository"
)

// StatsService aggregates per-user grading statistics
type StatsService struct {
	recordRepo repository.RecordRepo
	statsCache cache.StatsCache
}

// NewStatsService creates a new stats service
func NewStatsService(recordRepo repository.RecordRepo, statsCache cache.StatsCache) *StatsService {
	return &StatsService{
		recordRepo: recordRepo,
		statsCache: statsCache,
	}
}

// recentTotalsMax caps how many recent round totals the stats carry
const recentTotalsMax = 10

// GetStats returns the user's aggregated statistics, computed from the
// durable records and cached for a few minutes. Records whose scores are
// absent count toward RecordCount but not toward any average.
func (s *StatsService) GetStats(ctx context.Context, ownerID string) (*model.RecordStats, error) {
	cached, err := s.statsCache.Get(ctx, ownerID)
	if err == nil && cached != nil {
		return cached, nil
	}

	records, err := s.recordRepo.ListByOwner(ctx, ownerID, 0)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	totals := []int{}
	for _, record := range records {
		if len(record.Scores) == 0 {
			continue
		}
		for _, category := range model.RubricCategories {
			if score, ok := record.Scores[category]; ok {
				sums[category] += score
				counts[category]++
			}
		}
		if len(totals) < recentTotalsMax {
			totals = append(totals, record.Scores.Total())
		}
	}

	averages := make([]model.CategoryAverage, 0, len(model.RubricCategories))
	for _, category := range model.RubricCategories {
		avg := model.CategoryAverage{Category: category, Count: counts[category]}
		if avg.Count > 0 {
			avg.Average = float64(sums[category]) / float64(avg.Count)
		}
		averages = append(averages, avg)
	}

	stats := &model.RecordStats{
		OwnerID:      ownerID,
		RecordCount:  len(records),
		Averages:     averages,
		RecentTotals: totals,
		GeneratedAt:  time.Now(),
	}

	// Best effort cache refresh
	s.statsCache.Set(ctx, stats)

	return stats, nil
}
