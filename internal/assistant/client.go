package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/time/rate"
)

const geminiAPI = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// Client calls the Gemini generateContent API. It implements
// Responder.
type Client struct {
	APIKey     string
	Model      string
	MaxTokens  int
	HTTPClient *http.Client

	limiter *rate.Limiter
}

// NewClient creates a Client using the GEMINI_API_KEY env var. The
// rate limit keeps a student mashing the send button from burning
// quota; requests beyond it wait, they are not dropped.
func NewClient(model string, maxTokens int, rps float64) (*Client, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return &Client{
		APIKey:     key,
		Model:      model,
		MaxTokens:  maxTokens,
		HTTPClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

type apiRequest struct {
	Contents          []apiContent  `json:"contents"`
	SystemInstruction *apiContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  apiGenConfig  `json:"generationConfig"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type apiGenConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
	Error      *apiError      `json:"error,omitempty"`
}

type apiCandidate struct {
	Content apiContent `json:"content"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Ask sends one framed question to Gemini and returns the plain-text
// reply.
func (c *Client) Ask(ctx context.Context, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	reqBody := apiRequest{
		Contents: []apiContent{
			{Role: "user", Parts: []apiPart{{Text: buildQuestionPrompt(text)}}},
		},
		SystemInstruction: &apiContent{Parts: []apiPart{{Text: systemInstruction}}},
		GenerationConfig:  apiGenConfig{MaxOutputTokens: c.MaxTokens},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf(geminiAPI, c.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error (%s): %s", apiResp.Error.Status, apiResp.Error.Message)
	}

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if len(apiResp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	var parts []string
	for _, p := range apiResp.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	reply := strings.TrimSpace(strings.Join(parts, ""))
	if reply == "" {
		return "", fmt.Errorf("response contained no text")
	}

	return reply, nil
}
