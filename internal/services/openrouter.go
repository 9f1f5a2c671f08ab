package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hirewise/cv-matcher/internal/config"
	"hirewise/cv-matcher/internal/logger"
)

const responsePreviewLen = 200

// OpenRouterClient talks to an OpenAI-compatible chat/completions endpoint.
type OpenRouterClient struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	log        *zap.Logger
}

func NewOpenRouterClient(cfg config.LLMConfig, log *zap.Logger) *OpenRouterClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenRouterClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *OpenRouterClient) Model() string {
	return c.cfg.Model
}

// Complete implements CompletionClient.
func (c *OpenRouterClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("completion request",
		zap.String("req_id", rid),
		zap.String("model", c.cfg.Model),
		zap.Float32("temperature", req.Temperature),
		zap.Int("messages", len(req.Messages)),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"messages":    req.Messages,
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("completion request failed",
			zap.String("req_id", rid),
			zap.Error(err),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUpstream)
	}

	content := cc.Choices[0].Message.Content

	c.log.Info("completion response",
		zap.String("req_id", rid),
		zap.Int("content_length", len(content)),
		zap.String("content_preview", logger.TruncateForLog(content, responsePreviewLen)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)

	return content, nil
}

func (c *OpenRouterClient) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "CV Matcher")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode,
			logger.TruncateForLog(string(payload), responsePreviewLen))
	}

	return payload, nil
}
