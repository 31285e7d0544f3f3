package grading

import (
	"strings"
	"testing"

	"essaycoach/internal/model"
)

func TestBuildGradingPromptDeterministic(t *testing.T) {
	question := "試論社會救助法之補充性原則。"
	answer := "補充性原則係指⋯⋯"

	first := BuildGradingPrompt(question, answer)
	second := BuildGradingPrompt(question, answer)
	if first != second {
		t.Fatal("prompt is not deterministic for equal inputs")
	}
}

func TestBuildGradingPromptEmbedsInputsVerbatim(t *testing.T) {
	question := "何謂行政處分？請附具體實例說明。"
	answer := "依行政程序法第92條，補助率為100%之給付亦屬之。"

	prompt := BuildGradingPrompt(question, answer)
	if !strings.Contains(prompt, question) {
		t.Error("prompt does not embed the question verbatim")
	}
	if !strings.Contains(prompt, answer) {
		t.Error("prompt does not embed the answer verbatim")
	}
}

func TestBuildGradingPromptCarriesRubric(t *testing.T) {
	prompt := BuildGradingPrompt("題", "答")

	for _, cat := range model.RubricCategories {
		if !strings.Contains(prompt, cat) {
			t.Errorf("prompt missing rubric category %s", cat)
		}
	}

	// The example block teaches the model the exact key spellings.
	for _, fragment := range []string{
		`"切題性": 4`,
		`"結構與邏輯": 3`,
		`"專業與政策理解": 5`,
		`"批判與建議具體性": 4`,
		`"語言與表達": 2`,
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing example fragment %s", fragment)
		}
	}

	if !strings.Contains(prompt, "JSON") {
		t.Error("prompt missing the JSON output instruction")
	}
}
