// Package openai implements the SEO content generator on the OpenAI
// chat completions API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/usecase/seo"
)

const systemPrompt = "You are an expert e-commerce SEO specialist. Always return valid JSON."

// Generator produces SEO content via an OpenAI-compatible chat API.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// Config holds the content provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Logger      *zap.Logger
}

// NewGenerator creates an OpenAI-compatible SEO content provider.
func NewGenerator(cfg *Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
	}
}

// contentDTO is the JSON document the model is asked to return.
type contentDTO struct {
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	BulletPoints   []string `json:"bullet_points"`
}

// Generate implements seo.Generator. All failures are wrapped with
// domain.ErrContentProvider so the usecase layer can degrade to its
// template fallback.
func (g *Generator) Generate(ctx context.Context, p *product.Product) (seo.Content, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(p)},
		},
	})
	if err != nil {
		return seo.Content{}, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return seo.Content{}, fmt.Errorf("empty completion response: %w", domain.ErrContentProvider)
	}

	raw := stripFences(resp.Choices[0].Message.Content)

	var dto contentDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return seo.Content{}, fmt.Errorf("decode completion: %w: %w", err, domain.ErrContentProvider)
	}
	if dto.SEOTitle == "" || dto.SEODescription == "" {
		return seo.Content{}, fmt.Errorf("completion missing required fields: %w", domain.ErrContentProvider)
	}

	return seo.Content{
		Title:       dto.SEOTitle,
		Description: dto.SEODescription,
		Bullets:     dto.BulletPoints,
	}, nil
}

func buildPrompt(p *product.Product) string {
	return fmt.Sprintf(`Generate comprehensive SEO content for this pet product. Return valid JSON only.

Product: %s
Description: %s
Category: %s
Price: $%.2f
Tags: %s

Generate JSON with these fields:
- seo_title: Compelling title under 60 characters
- seo_description: Meta description under 160 characters
- bullet_points: Array of 4-5 key benefits/features`,
		p.Title(), p.Description(), p.Category(), p.Price(), strings.Join(p.Tags(), ", "))
}

// stripFences removes markdown code fences models wrap JSON in despite the
// JSON-only instruction.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseAPIError extracts a readable message from the API response. All errors
// are wrapped with domain.ErrContentProvider for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrContentProvider

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("content API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("content API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("content request failed: %w", wrap)
}
