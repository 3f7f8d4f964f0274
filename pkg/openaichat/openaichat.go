package openaichat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client implements IOpenAIChat against any chat/completions endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Config configures the client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New creates a new OpenAI-compatible chat client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openaichat: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Complete sends a synchronous chat completion request.
func (c *Client) Complete(ctx context.Context, req *Request) (*Response, error) {
	wireReq := chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		wireReq.Messages = append(wireReq.Messages, chatMessage{Role: "system", Content: req.System})
	}
	wireReq.Messages = append(wireReq.Messages, chatMessage{Role: "user", Content: req.User})

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("openaichat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openaichat: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openaichat: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openaichat: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			return nil, fmt.Errorf("openaichat: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("openaichat: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("openaichat: failed to parse response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("openaichat: empty choices in response")
	}
	return &Response{Text: strings.TrimSpace(result.Choices[0].Message.Content)}, nil
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}
