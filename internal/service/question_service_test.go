package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"essaycoach/internal/llm"
	"essaycoach/internal/model"
)

const suggestionReply = `{"questions": [
	{"topic": "社會福利", "text": "試評析長期照顧十年計畫2.0之財源設計，並提出具體改革建議。", "targetCategory": "批判與建議具體性", "rationale": "要求考生提出可操作的財源改革方案。"},
	{"topic": "行政法", "text": "論行政程序法上陳述意見機會之功能與界限。", "targetCategory": "語言與表達", "rationale": "概念區辨多，練習精確表述。"}
]}`

func newQuestionHarness(responses ...llm.MockResponse) (*QuestionService, *fakeRecordRepo, *llm.MockProvider) {
	recordRepo := newFakeRecordRepo()
	statsSvc := NewStatsService(recordRepo, newFakeStatsCache())
	provider := llm.NewMockProvider(responses...)
	svc := NewQuestionService(newFakeQuestionRepo(), statsSvc, provider, testAIConfig())
	return svc, recordRepo, provider
}

func TestSuggest_TargetsWeakestCategories(t *testing.T) {
	svc, recordRepo, provider := newQuestionHarness(llm.MockResponse{Text: suggestionReply})
	seedRecord(t, recordRepo, "r-1", "user_1", time.Now(), model.ScoreSet{
		model.CategoryRelevance:  5,
		model.CategoryStructure:  4,
		model.CategoryDomain:     5,
		model.CategoryCritique:   1,
		model.CategoryExpression: 2,
	})

	suggestions, err := svc.Suggest(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("len(suggestions) = %d, want 2", len(suggestions))
	}
	if suggestions[0].TargetCategory != model.CategoryCritique {
		t.Errorf("TargetCategory = %q, want 批判與建議具體性", suggestions[0].TargetCategory)
	}
	if suggestions[0].Topic == "" || suggestions[0].Text == "" || suggestions[0].Rationale == "" {
		t.Errorf("suggestion has empty fields: %+v", suggestions[0])
	}

	req := provider.Calls[0]
	if !strings.Contains(req.Prompt, "批判與建議具體性、語言與表達") {
		t.Errorf("prompt does not name the weakest categories:\n%s", req.Prompt)
	}
	if req.Schema == nil || req.Schema.Name != "practice-questions" {
		t.Errorf("request schema = %+v, want practice-questions", req.Schema)
	}
	if req.Model != "suggest-model" {
		t.Errorf("request model = %q, want suggest-model", req.Model)
	}
}

func TestSuggest_NoScoredRecordsCoversWholeRubric(t *testing.T) {
	svc, _, provider := newQuestionHarness(llm.MockResponse{Text: suggestionReply})

	if _, err := svc.Suggest(context.Background(), "user_1"); err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	prompt := provider.Calls[0].Prompt
	for _, category := range model.RubricCategories {
		if !strings.Contains(prompt, category) {
			t.Errorf("prompt missing category %q", category)
		}
	}
}

func TestSuggest_UnparseableReply(t *testing.T) {
	svc, _, _ := newQuestionHarness(llm.MockResponse{Text: "抱歉，我無法產生題目。"})

	_, err := svc.Suggest(context.Background(), "user_1")
	if err == nil {
		t.Fatal("expected an error for an unparseable reply")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %v, want a parse failure", err)
	}
}

func TestSuggest_ProviderError(t *testing.T) {
	svc, _, _ := newQuestionHarness(llm.MockResponse{Err: errors.New("rate limited")})

	if _, err := svc.Suggest(context.Background(), "user_1"); err == nil {
		t.Fatal("expected an error when generation fails")
	}
}
