package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"essaycoach/internal/model"
)

func seedRecord(t *testing.T, repo *fakeRecordRepo, id, ownerID string, createdAt time.Time, scores model.ScoreSet) {
	t.Helper()
	err := repo.Save(context.Background(), &model.Record{
		ID:        id,
		OwnerID:   ownerID,
		Question:  "題目",
		Answer:    "回答",
		Feedback:  "評語",
		Scores:    scores,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("seed record failed: %v", err)
	}
}

func TestGetStats_Aggregation(t *testing.T) {
	repo := newFakeRecordRepo()
	statsCache := newFakeStatsCache()
	svc := NewStatsService(repo, statsCache)
	base := time.Now()

	seedRecord(t, repo, "r-1", "user_1", base, model.ScoreSet{
		model.CategoryRelevance:  3,
		model.CategoryStructure:  3,
		model.CategoryDomain:     3,
		model.CategoryCritique:   3,
		model.CategoryExpression: 3,
	})
	seedRecord(t, repo, "r-2", "user_1", base.Add(time.Minute), model.ScoreSet{
		model.CategoryRelevance:  5,
		model.CategoryStructure:  1,
		model.CategoryExpression: 4,
	})
	// Feedback without a score block still counts as a record
	seedRecord(t, repo, "r-3", "user_1", base.Add(2*time.Minute), nil)

	stats, err := svc.GetStats(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.RecordCount != 3 {
		t.Errorf("RecordCount = %d, want 3", stats.RecordCount)
	}
	if len(stats.Averages) != len(model.RubricCategories) {
		t.Fatalf("len(Averages) = %d, want %d", len(stats.Averages), len(model.RubricCategories))
	}

	byCategory := make(map[string]model.CategoryAverage)
	for _, avg := range stats.Averages {
		byCategory[avg.Category] = avg
	}
	if got := byCategory[model.CategoryRelevance]; got.Average != 4.0 || got.Count != 2 {
		t.Errorf("relevance = %+v, want avg 4.0 count 2", got)
	}
	if got := byCategory[model.CategoryStructure]; got.Average != 2.0 || got.Count != 2 {
		t.Errorf("structure = %+v, want avg 2.0 count 2", got)
	}
	if got := byCategory[model.CategoryDomain]; got.Average != 3.0 || got.Count != 1 {
		t.Errorf("domain = %+v, want avg 3.0 count 1", got)
	}
	if got := byCategory[model.CategoryExpression]; got.Average != 3.5 || got.Count != 2 {
		t.Errorf("expression = %+v, want avg 3.5 count 2", got)
	}

	// Newest scored record first; the unscored one contributes no total
	wantTotals := []int{10, 15}
	if len(stats.RecentTotals) != len(wantTotals) {
		t.Fatalf("RecentTotals = %v, want %v", stats.RecentTotals, wantTotals)
	}
	for i := range wantTotals {
		if stats.RecentTotals[i] != wantTotals[i] {
			t.Fatalf("RecentTotals = %v, want %v", stats.RecentTotals, wantTotals)
		}
	}

	weakest := stats.WeakestCategories(2)
	if len(weakest) != 2 || weakest[0] != model.CategoryStructure || weakest[1] != model.CategoryDomain {
		t.Errorf("WeakestCategories = %v, want [結構與邏輯 專業與政策理解]", weakest)
	}
}

func TestGetStats_CacheHit(t *testing.T) {
	repo := newFakeRecordRepo()
	statsCache := newFakeStatsCache()
	svc := NewStatsService(repo, statsCache)

	statsCache.Set(context.Background(), &model.RecordStats{
		OwnerID:     "user_1",
		RecordCount: 7,
	})

	stats, err := svc.GetStats(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.RecordCount != 7 {
		t.Errorf("RecordCount = %d, want cached 7", stats.RecordCount)
	}
	if repo.listCalls != 0 {
		t.Errorf("repo list calls = %d, want 0 on cache hit", repo.listCalls)
	}
}

func TestGetStats_RefreshesCache(t *testing.T) {
	repo := newFakeRecordRepo()
	statsCache := newFakeStatsCache()
	svc := NewStatsService(repo, statsCache)

	if _, err := svc.GetStats(context.Background(), "user_1"); err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	cached, _ := statsCache.Get(context.Background(), "user_1")
	if cached == nil {
		t.Fatal("computed stats were not cached")
	}

	if _, err := svc.GetStats(context.Background(), "user_1"); err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("repo list calls = %d, want 1", repo.listCalls)
	}
}

func TestGetStats_NoRecords(t *testing.T) {
	svc := NewStatsService(newFakeRecordRepo(), newFakeStatsCache())

	stats, err := svc.GetStats(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.RecordCount != 0 {
		t.Errorf("RecordCount = %d, want 0", stats.RecordCount)
	}
	if len(stats.RecentTotals) != 0 {
		t.Errorf("RecentTotals = %v, want empty", stats.RecentTotals)
	}
	for _, avg := range stats.Averages {
		if avg.Count != 0 || avg.Average != 0 {
			t.Errorf("average %+v, want zero values", avg)
		}
	}
	if weakest := stats.WeakestCategories(2); len(weakest) != 0 {
		t.Errorf("WeakestCategories = %v, want empty", weakest)
	}
}

func TestGetStats_RecentTotalsCapped(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewStatsService(repo, newFakeStatsCache())
	base := time.Now()

	for i := 1; i <= 11; i++ {
		seedRecord(t, repo, fmt.Sprintf("r-%d", i), "user_1", base.Add(time.Duration(i)*time.Minute),
			model.ScoreSet{model.CategoryRelevance: 2})
	}
	seedRecord(t, repo, "r-12", "user_1", base.Add(12*time.Minute),
		model.ScoreSet{model.CategoryRelevance: 5})

	stats, err := svc.GetStats(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if len(stats.RecentTotals) != 10 {
		t.Fatalf("len(RecentTotals) = %d, want 10", len(stats.RecentTotals))
	}
	if stats.RecentTotals[0] != 5 {
		t.Errorf("RecentTotals[0] = %d, want newest total 5", stats.RecentTotals[0])
	}
}
