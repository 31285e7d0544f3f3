package model

import "testing"

func statsWith(averages ...CategoryAverage) *RecordStats {
	return &RecordStats{Averages: averages}
}

func TestWeakestCategories(t *testing.T) {
	stats := statsWith(
		CategoryAverage{Category: CategoryRelevance, Average: 4.5, Count: 4},
		CategoryAverage{Category: CategoryStructure, Average: 2.0, Count: 4},
		CategoryAverage{Category: CategoryDomain, Average: 3.0, Count: 4},
		CategoryAverage{Category: CategoryCritique, Average: 1.5, Count: 4},
		CategoryAverage{Category: CategoryExpression, Average: 3.5, Count: 4},
	)

	got := stats.WeakestCategories(2)
	want := []string{CategoryCritique, CategoryStructure}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("WeakestCategories(2) = %v, want %v", got, want)
	}
}

func TestWeakestCategories_TiesFollowRubricOrder(t *testing.T) {
	stats := statsWith(
		CategoryAverage{Category: CategoryRelevance, Average: 3.0, Count: 2},
		CategoryAverage{Category: CategoryStructure, Average: 3.0, Count: 2},
		CategoryAverage{Category: CategoryDomain, Average: 3.0, Count: 2},
	)

	got := stats.WeakestCategories(2)
	want := []string{CategoryRelevance, CategoryStructure}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("WeakestCategories(2) = %v, want %v", got, want)
	}
}

func TestWeakestCategories_SkipsUnseenCategories(t *testing.T) {
	stats := statsWith(
		CategoryAverage{Category: CategoryRelevance, Average: 0, Count: 0},
		CategoryAverage{Category: CategoryStructure, Average: 4.0, Count: 1},
	)

	got := stats.WeakestCategories(2)
	if len(got) != 1 || got[0] != CategoryStructure {
		t.Errorf("WeakestCategories(2) = %v, want [結構與邏輯]", got)
	}
}

func TestWeakestCategories_Empty(t *testing.T) {
	stats := statsWith()
	if got := stats.WeakestCategories(2); len(got) != 0 {
		t.Errorf("WeakestCategories(2) = %v, want empty", got)
	}
}
