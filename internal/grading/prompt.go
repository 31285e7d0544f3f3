package grading

import "fmt"

// gradingPromptTemplate carries the full rubric, the required reply format and
// one example of the trailing JSON score block. The example key spellings are
// what ExtractScores expects back, so the two must not drift apart.
const gradingPromptTemplate = `你是一位嚴謹、專業且善於教學的法學專家，專長於行政法與社會福利政策。
請根據下列五個指標，針對學生的申論題答案進行專業評分與評論，每個指標滿分5分，總分25分。
請針對答案的優缺點給予具體評論與改進建議。

- 切題性：答案是否緊扣題目要求，內容有無偏離主題。
- 結構與邏輯：答案是否有清晰的結構，論述是否有邏輯性與層次。
- 專業與政策理解：對行政法與社會福利政策的專業知識掌握與應用程度。
- 批判與建議具體性：是否能提出具體、深入的批判與建議。
- 語言與表達：語言是否精確、流暢，表達是否清楚。

請依下列格式回覆：
1. 五項指標分數（每項5分，並簡要說明評分理由）
2. 總分
3. 專業回饋（針對答案優缺點給予具體評論）
4. 改進建議（明確指出如何提升答案品質）
5. 參考改進後的範例答案（重寫一份更佳的示範答案）

題目：%s
用戶回答：%s

請將五項指標分數以 JSON 格式回傳，例如：
{
"切題性": 4,
"結構與邏輯": 3,
"專業與政策理解": 5,
"批判與建議具體性": 4,
"語言與表達": 2
}`

// BuildGradingPrompt embeds the question and answer verbatim into the rubric
// prompt. Deterministic: equal inputs produce equal prompts.
func BuildGradingPrompt(question, answer string) string {
	return fmt.Sprintf(gradingPromptTemplate, question, answer)
}
