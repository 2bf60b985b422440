package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/BhargaviBathini/food-allergy/internal/logger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   os.Getenv("GEMINI_MODEL"),
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// NewGeminiClientWithBaseURL points the client at a non-default endpoint.
// Used by tests against an httptest server.
func NewGeminiClientWithBaseURL(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalyzeFoodImage sends the image with the analysis prompt to Gemini and
// returns the model's raw text reply.
func (g *GeminiClient) AnalyzeFoodImage(ctx context.Context, imageBase64 string, userAllergies []string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: missing GEMINI_API_KEY", ErrProvider)
	}
	if g.model == "" {
		return "", fmt.Errorf("%w: missing GEMINI_MODEL", ErrProvider)
	}
	if imageBase64 == "" {
		return "", fmt.Errorf("%w: empty image payload", ErrProvider)
	}

	prompt := BuildFoodAnalysisPrompt(userAllergies)

	url := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
					{
						"inline_data": map[string]string{
							"mime_type": "image/jpeg",
							"data":      imageBase64,
						},
					},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	logger.Debug("gemini raw response", zap.ByteString("body", raw))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: gemini api error: %d - %s", ErrProvider, resp.StatusCode, string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: malformed gemini envelope: %v", ErrProvider, err)
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no response from Gemini API", ErrProvider)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
