package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"hirewise/cv-matcher/internal/config"
)

// GeminiClient implements CompletionClient on top of the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
	log       *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.Model,
		timeout:   timeout,
		log:       log,
	}, nil
}

func (g *GeminiClient) Model() string {
	return g.modelName
}

// Complete implements CompletionClient. System messages become the system
// instruction; the remaining messages are joined as user content.
func (g *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := req.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxTokens,
	}

	var userParts []string
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: msg.Content}},
			}
		default:
			userParts = append(userParts, msg.Content)
		}
	}

	prompt := strings.Join(userParts, "\n\n")

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrUpstream)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrUpstream)
	}

	g.log.Info("gemini completion response",
		zap.String("model", g.modelName),
		zap.Int("content_length", len(text)),
	)

	return text, nil
}
