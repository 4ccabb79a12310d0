// Package llm implements generation back-ends over the OpenAI-style
// Responses API. Each back-end is one Generator; selection happens in
// the registry, not here.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultTimeout = 60 * time.Second
	maxRetries     = 3
	retryBackoff   = 1500 * time.Millisecond
)

// Client talks to one OpenAI-compatible provider. Credentials come from
// the environment at call time so a missing key fails the request, not
// process startup.
type Client struct {
	name       string
	model      string
	apiKeyEnv  string
	baseURLEnv string
	defaultURL string
	httpClient *http.Client
}

// NewOpenAI returns a Generator for the OpenAI Responses API.
func NewOpenAI(model string) *Client {
	return &Client{
		name:       "openai",
		model:      model,
		apiKeyEnv:  "OPENAI_API_KEY",
		baseURLEnv: "OPENAI_BASE_URL",
		defaultURL: "https://api.openai.com/v1/responses",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewGroq returns a Generator for Groq's OpenAI-compatible endpoint.
func NewGroq(model string) *Client {
	return &Client{
		name:       "groq",
		model:      model,
		apiKeyEnv:  "GROQ_API_KEY",
		baseURLEnv: "GROQ_BASE_URL",
		defaultURL: "https://api.groq.com/openai/v1/responses",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Name() string {
	return c.name
}

type generateRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type generateResponse struct {
	OutputText string          `json:"output_text"`
	Output     []outputMessage `json:"output"`
}

type outputMessage struct {
	Type    string          `json:"type"`
	Content []outputContent `json:"content"`
}

type outputContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate posts the prompt and returns the model's text. Transient
// failures (429, 5xx, transport errors) are retried with linear
// backoff; everything else fails immediately.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv(c.apiKeyEnv)
	if apiKey == "" {
		return "", genErr(c.name, "%s is not set", c.apiKeyEnv)
	}
	url := os.Getenv(c.baseURLEnv)
	if url == "" {
		url = c.defaultURL
	}

	body, err := json.Marshal(generateRequest{Model: c.model, Input: prompt})
	if err != nil {
		return "", genErr(c.name, "encode request: %v", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		text, retryable, err := c.post(ctx, url, apiKey, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable || attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return "", genErr(c.name, "request canceled: %v", ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return "", lastErr
}

func (c *Client) post(ctx context.Context, url, apiKey string, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, genErr(c.name, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, genErr(c.name, "request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, genErr(c.name, "read response: %v", err)
	}

	if resp.StatusCode >= 400 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, genErr(c.name, "api error %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var decoded generateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", false, genErr(c.name, "decode response: %v", err)
	}

	text := extractOutputText(decoded)
	if text == "" {
		return "", false, genErr(c.name, "api returned no output text")
	}
	return text, false, nil
}

// extractOutputText prefers the aggregate field when present, otherwise
// walks the output array for message text blocks.
func extractOutputText(resp generateResponse) string {
	if resp.OutputText != "" {
		return resp.OutputText
	}
	var texts []string
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" && content.Text != "" {
				texts = append(texts, content.Text)
			}
		}
	}
	return strings.Join(texts, "\n")
}
