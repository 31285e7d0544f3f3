package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"essaycoach/internal/config"
	"essaycoach/internal/llm"
	"essaycoach/internal/model"
	"essaycoach/internal/repository"
)

const suggestCount = 3

const suggestPromptTemplate = `你是一位資深的國家考試命題委員，熟悉行政法與社會福利政策領域的申論題命題。

一位考生在以下評分指標上表現較弱：%s。

請設計 %d 題申論題，幫助該考生針對弱項加強練習。每題須標明主題領域（topic）、完整題目（text）、主要訓練的評分指標（targetCategory，必須是下列之一：%s），以及一句說明此題為何能訓練該指標（rationale）。

請以 JSON 格式回覆：{"questions": [{"topic": "...", "text": "...", "targetCategory": "...", "rationale": "..."}]}`

// suggestionSchema constrains suggestion responses to a parseable shape
var suggestionSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "Suggested practice questions targeting weak rubric categories",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic":          map[string]any{"type": "string"},
						"text":           map[string]any{"type": "string"},
						"targetCategory": map[string]any{"type": "string"},
						"rationale":      map[string]any{"type": "string"},
					},
					"required":             []string{"topic", "text", "targetCategory", "rationale"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	},
}

// QuestionService serves the question bank and personalized suggestions
type QuestionService struct {
	questionRepo repository.QuestionRepo
	statsSvc     *StatsService
	provider     llm.Provider
	aiCfg        *config.AIConfig
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questionRepo repository.QuestionRepo,
	statsSvc *StatsService,
	provider llm.Provider,
	aiCfg *config.AIConfig,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		statsSvc:     statsSvc,
		provider:     provider,
		aiCfg:        aiCfg,
	}
}

// List returns bank questions, optionally filtered by topic
func (s *QuestionService) List(ctx context.Context, topic string, limit int64) ([]*model.Question, error) {
	return s.questionRepo.List(ctx, topic, limit)
}

// Get retrieves one bank question
func (s *QuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Suggest generates practice questions aimed at the user's weakest rubric
// categories. Users without scored records get questions across the whole
// rubric.
func (s *QuestionService) Suggest(ctx context.Context, ownerID string) ([]model.SuggestedQuestion, error) {
	stats, err := s.statsSvc.GetStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	weakest := stats.WeakestCategories(2)
	if len(weakest) == 0 {
		weakest = model.RubricCategories
	}

	prompt := fmt.Sprintf(suggestPromptTemplate,
		strings.Join(weakest, "、"),
		suggestCount,
		strings.Join(model.RubricCategories, "、"))

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Model:       s.aiCfg.Models.Suggest,
		Schema:      suggestionSchema,
		MaxTokens:   s.aiCfg.MaxTokens,
		Temperature: s.aiCfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	var out struct {
		Questions []model.SuggestedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(resp.Text), &out); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	return out.Questions, nil
}
