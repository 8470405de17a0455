package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/resilience"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.2
	defaultMaxTokens   = 1500
)

type Options struct {
	Model              string
	Temperature        float64
	MaxTokens          int
	HTTPTimeout        time.Duration
	ResilienceExecutor *resilience.Executor
}

// Client drafts legal answers over the OpenAI chat completions API.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int

	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL, apiKey string, options Options) *Client {
	timeout := options.HTTPTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	model := options.Model
	if model == "" {
		model = defaultModel
	}
	temperature := options.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	maxTokens := options.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  &http.Client{Timeout: timeout},
		executor:    options.ResilienceExecutor,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) Compose(ctx context.Context, question string, passages []domain.Candidate) (string, error) {
	prompt := buildAnalysisPrompt(question, passages)

	var answer string
	call := func(callCtx context.Context) error {
		out, err := c.complete(callCtx, prompt)
		if err != nil {
			return err
		}
		answer = out
		return nil
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "openai.chat", call, classifyOpenAIError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", &HTTPStatusError{
			Operation:  "chat completions",
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(payload),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("chat completions: %s: %s", parsed.Error.Type, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completions: empty choices")
	}

	answer := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("chat completions: empty answer")
	}
	return answer, nil
}
