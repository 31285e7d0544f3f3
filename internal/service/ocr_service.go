package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const ocrPrompt = `請將圖片中的手寫或印刷文字完整轉錄為純文字。保留段落分行，不要加入任何說明或評論。若圖片中沒有文字，回覆空字串。`

// ocrFailureText is returned in place of extracted text when recognition
// fails. It is user-facing content, not an error.
const ocrFailureText = "（無法辨識圖片內容，請改以文字輸入）"

// OCRService transcribes photographed answers into text via Gemini vision
type OCRService struct {
	client *genai.Client
	model  string
}

// NewOCRService creates a new OCR service
func NewOCRService(ctx context.Context, apiKey, model string) (*OCRService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required for OCR")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &OCRService{
		client: client,
		model:  model,
	}, nil
}

// ExtractText transcribes the image. Recognition failures come back as a
// sentinel text the user can read, never as an error.
func (s *OCRService) ExtractText(ctx context.Context, imageBytes []byte, mimeType string) string {
	if len(imageBytes) == 0 {
		return ocrFailureText
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageBytes}},
			{Text: ocrPrompt},
		},
	}}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		log.Printf("OCR generation failed: %v", err)
		return ocrFailureText
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return ocrFailureText
	}
	return text
}
