package model

import "time"

// CategoryAverage is the mean score for one rubric category across a user's
// saved records. Count is the number of records that had the category present.
type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// RecordStats aggregates a user's saved records: per-category averages in the
// fixed rubric order and the totals of the most recent records, newest first.
type RecordStats struct {
	OwnerID      string            `json:"ownerId"`
	RecordCount  int               `json:"recordCount"`
	Averages     []CategoryAverage `json:"averages"`
	RecentTotals []int             `json:"recentTotals"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// WeakestCategories returns up to n categories with the lowest averages,
// considering only categories that appeared in at least one record.
func (s *RecordStats) WeakestCategories(n int) []string {
	present := make([]CategoryAverage, 0, len(s.Averages))
	for _, avg := range s.Averages {
		if avg.Count > 0 {
			present = append(present, avg)
		}
	}
	// Stable selection: Averages already follows the fixed category order, so
	// ties resolve to the earlier category.
	weakest := make([]string, 0, n)
	picked := make(map[string]bool, n)
	for len(weakest) < n && len(weakest) < len(present) {
		best := -1
		for i, avg := range present {
			if picked[avg.Category] {
				continue
			}
			if best == -1 || avg.Average < present[best].Average {
				best = i
			}
		}
		if best == -1 {
			break
		}
		picked[present[best].Category] = true
		weakest = append(weakest, present[best].Category)
	}
	return weakest
}
