package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pantry-matcher/internal/infrastructure/config"
	"pantry-matcher/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient Gemini API 客戶端
type GeminiClient struct {
	config *config.Config
	client *resty.Client
}

// NewGeminiClient 創建 Gemini 客戶端
func NewGeminiClient(cfg *config.Config) *GeminiClient {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Gemini.Timeout)

	return &GeminiClient{
		config: cfg,
		client: client,
	}
}

// GenerateText 送出文字生成請求並取回第一個候選內容
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.config.Gemini.APIKey == "" {
		return "", fmt.Errorf("missing Gemini API key")
	}

	req := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     c.config.Gemini.Temperature,
			"maxOutputTokens": c.config.Gemini.MaxOutputTokens,
			"topP":            c.config.Gemini.TopP,
		},
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.Gemini.APIKey).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", c.config.Gemini.Model))

	common.LogAICall(time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %v", common.ErrAIServiceError, err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Gemini API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Gemini.Model),
		)
		return "", fmt.Errorf("%w: status %d", common.ErrAIServiceError, resp.StatusCode())
	}

	// 解析回應
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty text in Gemini response")
	}
	return text, nil
}
