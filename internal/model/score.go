package model

// The five rubric categories, in display order. The strings double as the JSON
// keys the grading model is instructed to emit, so they must match the prompt
// example exactly.
const (
	CategoryRelevance  = "切題性"
	CategoryStructure  = "結構與邏輯"
	CategoryDomain     = "專業與政策理解"
	CategoryCritique   = "批判與建議具體性"
	CategoryExpression = "語言與表達"
)

// RubricCategories is the fixed category order used for radar axes and stats.
var RubricCategories = []string{
	CategoryRelevance,
	CategoryStructure,
	CategoryDomain,
	CategoryCritique,
	CategoryExpression,
}

const (
	// CategoryMax is the maximum score per rubric category.
	CategoryMax = 5
	// TotalMax is the displayed denominator for the total score. It stays 25
	// even when fewer than five categories were extracted.
	TotalMax = 25
)

// ScoreSet maps a rubric category to its 0-5 score. A nil ScoreSet means
// extraction found no usable score block. Keys are not validated against
// RubricCategories; unknown keys pass through.
type ScoreSet map[string]int

// Total sums the present category scores.
func (s ScoreSet) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// RadarPoint is one axis of the radar chart series.
type RadarPoint struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// RadarSeries returns the scores as a closed polygon: points follow the fixed
// category order, missing categories are omitted, and the first point is
// repeated at the end to close the shape. An empty set yields nil.
func (s ScoreSet) RadarSeries() []RadarPoint {
	points := make([]RadarPoint, 0, len(RubricCategories)+1)
	for _, cat := range RubricCategories {
		if v, ok := s[cat]; ok {
			points = append(points, RadarPoint{Category: cat, Score: v})
		}
	}
	if len(points) == 0 {
		return nil
	}
	return append(points, points[0])
}
