package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// Defaults for the Anthropic Messages API.
const (
	DefaultAnthropicEndpoint = "https://api.anthropic.com"
	DefaultAnthropicModel    = "claude-haiku-4-20250514"
	anthropicVersion         = "2023-06-01"
)

// ErrMissingAnthropicKey is returned when no Anthropic API key is configured.
var ErrMissingAnthropicKey = errors.New("ANTHROPIC_API_KEY is not set")

// AnthropicAnalyzer implements Analyzer using the Anthropic Messages API.
type AnthropicAnalyzer struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewAnthropicAnalyzer creates an analyzer backed by Claude. Like
// NewOpenAIAnalyzer it accepts an empty key and fails at Analyze time.
func NewAnthropicAnalyzer(apiKey string, opts ...Option) *AnthropicAnalyzer {
	cfg := newClientConfig(DefaultAnthropicEndpoint, DefaultAnthropicModel, opts)
	return &AnthropicAnalyzer{
		apiKey: strings.TrimSpace(apiKey),
		model:  cfg.model,
		client: cfg.client(),
	}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type,omitempty"`
	Data      string `json:"data,omitempty"`
	URL       string `json:"url,omitempty"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Model   string             `json:"model"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// imageSource maps a data URL onto an inline base64 block and anything
// else onto a URL block.
func imageSource(img string) *anthropicSource {
	if rest, ok := strings.CutPrefix(img, "data:"); ok {
		meta, data, found := strings.Cut(rest, ",")
		if mediaType, isBase64 := strings.CutSuffix(meta, ";base64"); found && isBase64 {
			return &anthropicSource{Type: "base64", MediaType: mediaType, Data: data}
		}
	}
	return &anthropicSource{Type: "url", URL: img}
}

// Analyze sends the photos to Claude and normalizes its JSON answer.
func (a *AnthropicAnalyzer) Analyze(ctx context.Context, images []string) (*Draft, error) {
	if a.apiKey == "" {
		return nil, ErrMissingAnthropicKey
	}

	content := make([]anthropicContent, 0, len(images)+1)
	for _, img := range images[:min(len(images), domain.MaxImages)] {
		content = append(content, anthropicContent{Type: "image", Source: imageSource(img)})
	}
	content = append(content, anthropicContent{Type: "text", Text: userPrompt()})

	req := anthropicRequest{
		Model:       a.model,
		MaxTokens:   maxOutputTokens,
		System:      systemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: content}},
		Temperature: temperature,
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", a.apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetBody(req).
		Post("/v1/messages")
	if err != nil {
		return nil, fmt.Errorf("calling anthropic API: %w", err)
	}
	if resp.IsError() {
		var apiErr anthropicError
		if jsonErr := json.Unmarshal(resp.Body(), &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("anthropic API error (status %d): %s: %s",
				resp.StatusCode(), apiErr.Error.Type, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var out anthropicResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("parsing anthropic response: %w", err)
	}

	var text string
	for _, c := range out.Content {
		if c.Type == "text" && c.Text != "" {
			text = c.Text
			break
		}
	}
	if text == "" {
		return nil, errors.New("empty response from anthropic")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return nil, fmt.Errorf("anthropic returned non-JSON output: %s", truncate(text, maxErrorBodyBytes))
	}
	return Normalize(parsed), nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
