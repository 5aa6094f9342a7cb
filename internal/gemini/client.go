// Package gemini is a thin client for the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"prreviewer/internal/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client calls the completion service. One request in flight at a time; the
// orchestrator is fully sequential.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client

	temperature    float64
	topP           float64
	thinkingBudget int
	maxTokens      int
}

// NewClient builds a client from the run configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:         cfg.Gemini.APIKey,
		model:          cfg.Gemini.Model,
		baseURL:        defaultBaseURL,
		client:         &http.Client{Timeout: 120 * time.Second},
		temperature:    cfg.Gemini.Temperature,
		topP:           cfg.Gemini.TopP,
		thinkingBudget: cfg.Gemini.ThinkingBudget,
		maxTokens:      cfg.Gemini.MaxOutputTokens,
	}
}

// Generate sends one prompt with a system instruction and returns the raw
// model text. Transport and API errors come back as errors; interpreting the
// text is the caller's concern.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: systemInstruction}},
		},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     c.temperature,
			TopP:            c.topP,
			MaxOutputTokens: c.maxTokens,
		},
	}
	if c.thinkingBudget > 0 {
		body.GenerationConfig.ThinkingConfig = &thinkingConfig{ThinkingBudget: c.thinkingBudget}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var text string
	for _, p := range result.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}

type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64         `json:"temperature,omitempty"`
	TopP            float64         `json:"topP,omitempty"`
	MaxOutputTokens int             `json:"maxOutputTokens,omitempty"`
	ThinkingConfig  *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}
