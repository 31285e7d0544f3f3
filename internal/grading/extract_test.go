package grading

import (
	"strings"
	"testing"

	"essaycoach/internal/model"
)

const scoreBlock = `{"切題性":4,"結構與邏輯":3,"專業與政策理解":5,"批判與建議具體性":4,"語言與表達":2}`

func TestExtractScoresWellFormed(t *testing.T) {
	text := "第一段說明評分理由。\n" + scoreBlock + "\n後續建議請參考。"

	scores := ExtractScores(text)
	if scores == nil {
		t.Fatal("expected scores, got nil")
	}

	want := model.ScoreSet{
		model.CategoryRelevance:  4,
		model.CategoryStructure:  3,
		model.CategoryDomain:     5,
		model.CategoryCritique:   4,
		model.CategoryExpression: 2,
	}
	if len(scores) != len(want) {
		t.Fatalf("got %d categories, want %d", len(scores), len(want))
	}
	for cat, v := range want {
		if scores[cat] != v {
			t.Errorf("scores[%s] = %d, want %d", cat, scores[cat], v)
		}
	}
	if got := scores.Total(); got != 18 {
		t.Errorf("Total() = %d, want 18", got)
	}
}

func TestExtractScoresNoBrace(t *testing.T) {
	text := "  這份答案整體不錯，但缺乏具體建議。  "

	if scores := ExtractScores(text); scores != nil {
		t.Errorf("expected nil scores, got %v", scores)
	}
	if got, want := SanitizeFeedback(text), strings.TrimSpace(text); got != want {
		t.Errorf("SanitizeFeedback() = %q, want trimmed input %q", got, want)
	}
}

func TestExtractScoresMalformedBlock(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"trailing comma", `評語 {"切題性": 4,} 結尾`},
		{"unquoted keys", `評語 {切題性: 4} 結尾`},
		{"not an object of ints", `評語 {"切題性": "四"} 結尾`},
		{"non-integer values", `評語 {"切題性": 4.5} 結尾`},
		{"empty block", `評語 {} 結尾`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if scores := ExtractScores(tc.text); scores != nil {
				t.Errorf("expected nil scores, got %v", scores)
			}
			// The attempted span is still stripped from the display text.
			got := SanitizeFeedback(tc.text)
			if strings.ContainsAny(got, "{}") {
				t.Errorf("SanitizeFeedback() left brace content behind: %q", got)
			}
			if !strings.Contains(got, "評語") || !strings.Contains(got, "結尾") {
				t.Errorf("SanitizeFeedback() lost prose: %q", got)
			}
		})
	}
}

func TestExtractScoresUnknownKeysPassThrough(t *testing.T) {
	text := `{"切題性": 4, "創意": 5}`

	scores := ExtractScores(text)
	if scores == nil {
		t.Fatal("expected scores, got nil")
	}
	if scores["創意"] != 5 {
		t.Errorf("unknown key not passed through: %v", scores)
	}
}

func TestExtractScoresPartialSet(t *testing.T) {
	text := `回饋內容 {"切題性": 3, "語言與表達": 5} 結束`

	scores := ExtractScores(text)
	if scores == nil {
		t.Fatal("expected scores, got nil")
	}
	if len(scores) != 2 {
		t.Fatalf("got %d categories, want 2", len(scores))
	}
	if got := scores.Total(); got != 8 {
		t.Errorf("Total() = %d, want 8", got)
	}
}

func TestExtractScoresFirstSpanWins(t *testing.T) {
	text := `{"切題性": 2} 其他內容 {"切題性": 5}`

	scores := ExtractScores(text)
	if scores == nil {
		t.Fatal("expected scores, got nil")
	}
	if scores[model.CategoryRelevance] != 2 {
		t.Errorf("expected first span to win, got %v", scores)
	}
}

func TestExtractScoresMultilineSpan(t *testing.T) {
	text := "評分如下：\n{\n\"切題性\": 4,\n\"結構與邏輯\": 3\n}\n以上。"

	scores := ExtractScores(text)
	if scores == nil {
		t.Fatal("expected scores, got nil")
	}
	if scores.Total() != 7 {
		t.Errorf("Total() = %d, want 7", scores.Total())
	}

	sanitized := SanitizeFeedback(text)
	if strings.ContainsAny(sanitized, "{}") {
		t.Errorf("sanitized text still has braces: %q", sanitized)
	}
}

func TestSanitizeFeedbackRemovesExactSpan(t *testing.T) {
	prose := "前段評論。"
	tail := "後段建議。"
	text := prose + scoreBlock + tail

	got := SanitizeFeedback(text)
	want := strings.TrimSpace(prose + tail)
	if got != want {
		t.Errorf("SanitizeFeedback() = %q, want %q", got, want)
	}
}

func TestSanitizeFeedbackIdempotent(t *testing.T) {
	text := "評論。" + scoreBlock + " 建議。"

	once := SanitizeFeedback(text)
	twice := SanitizeFeedback(once)
	if once != twice {
		t.Errorf("sanitize not idempotent: %q vs %q", once, twice)
	}
}

func TestSanitizeFeedbackKeepsLaterBrackets(t *testing.T) {
	// Only the first span goes; later brace content is not the extractor's
	// span and must survive.
	text := scoreBlock + " 參考條文 {行政程序法}"

	got := SanitizeFeedback(text)
	if !strings.Contains(got, "{行政程序法}") {
		t.Errorf("later brace content was removed: %q", got)
	}
}
