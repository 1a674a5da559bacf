package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"

	"github.com/mantra-journal/mantra/internal/models"
)

// Config holds the Gemini provider settings, read from MANTRA_AI_* env vars.
// The API key usually comes from the OS keyring instead; the env var is the
// fallback for headless setups.
type Config struct {
	APIKey     string `envconfig:"API_KEY"`
	BaseURL    string `envconfig:"BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Model      string `envconfig:"MODEL" default:"gemini-2.5-flash"`
	TimeoutSec int    `envconfig:"TIMEOUT_SEC" default:"90"`
}

// LoadConfig reads the provider configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("mantra_ai", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read AI config: %w", err)
	}
	return cfg, nil
}

// GeminiProvider generates insights through the Gemini generateContent API.
type GeminiProvider struct {
	client *resty.Client
	model  string
}

// NewGeminiProvider builds a provider from cfg and the resolved API key.
func NewGeminiProvider(cfg Config, apiKey string) *GeminiProvider {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey).
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second)

	return &GeminiProvider{client: c, model: cfg.Model}
}

// Request/response structs for JSON binding. Only the fields we use.

type generateRequest struct {
	Contents         []content      `json:"contents"`
	GenerationConfig generateConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type rawInsight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// insightSchema constrains the model output to the six-insight shape.
var insightSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"type": {"type": "STRING", "description": "One of: pattern_detection, temporal_patterns, emotional_complexity, what_helps, predictions, diary_themes"},
			"title": {"type": "STRING"},
			"content": {"type": "STRING"}
		},
		"required": ["type", "title", "content"]
	}
}`)

// GenerateInsights implements Generator. The returned insights carry type,
// title, and content only; the cache layer assigns ids and expiry.
func (p *GeminiProvider) GenerateInsights(ctx context.Context, entries []models.MoodEntry, userName string) ([]models.Insight, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(entries, userName)}}}},
		GenerationConfig: generateConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema,
		},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", p.model))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode(), resp.String())
	}

	var gr generateResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content returned from AI")
	}

	var raw []rawInsight
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &raw); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}

	out := make([]models.Insight, 0, len(raw))
	for _, r := range raw {
		t := models.InsightType(r.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("unknown insight type %q", r.Type)
		}
		out = append(out, models.Insight{Type: t, Title: r.Title, Content: r.Content})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty insight batch")
	}
	return out, nil
}
