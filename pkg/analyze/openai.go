package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// Defaults for the OpenAI Responses API.
const (
	DefaultEndpoint   = "https://api.openai.com"
	DefaultModel      = "gpt-4o-mini"
	DefaultTimeout    = 60 * time.Second
	temperature       = 0.3
	maxOutputTokens   = 900
	maxErrorBodyBytes = 4000
)

var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

	// ErrMissingOutput is returned when the response carries no output text.
	ErrMissingOutput = errors.New("OpenAI response missing output_text")
)

// OpenAIAnalyzer implements Analyzer using the OpenAI Responses API.
type OpenAIAnalyzer struct {
	apiKey string
	model  string
	client *resty.Client
}

// Option configures an analyzer's HTTP client.
type Option func(*clientConfig)

type clientConfig struct {
	endpoint   string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// WithEndpoint overrides the API base URL.
func WithEndpoint(u string) Option {
	return func(c *clientConfig) {
		if u != "" {
			c.endpoint = strings.TrimRight(u, "/")
		}
	}
}

// WithModel overrides the model name.
func WithModel(m string) Option {
	return func(c *clientConfig) {
		if m != "" {
			c.model = m
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

func newClientConfig(endpoint, model string, opts []Option) clientConfig {
	cfg := clientConfig{
		endpoint: endpoint,
		model:    model,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *clientConfig) client() *resty.Client {
	client := resty.New()
	if c.httpClient != nil {
		client = resty.NewWithClient(c.httpClient)
	}
	return client.SetBaseURL(c.endpoint).
		SetTimeout(c.timeout).
		SetHeader("Content-Type", "application/json")
}

// NewOpenAIAnalyzer creates an analyzer. An empty apiKey is accepted so the
// server can start without one; Analyze then fails with ErrMissingAPIKey.
func NewOpenAIAnalyzer(apiKey string, opts ...Option) *OpenAIAnalyzer {
	cfg := newClientConfig(DefaultEndpoint, DefaultModel, opts)
	return &OpenAIAnalyzer{
		apiKey: strings.TrimSpace(apiKey),
		model:  cfg.model,
		client: cfg.client(),
	}
}

type responsesRequest struct {
	Model           string          `json:"model"`
	Input           []inputMessage  `json:"input"`
	Temperature     float64         `json:"temperature"`
	MaxOutputTokens int             `json:"max_output_tokens"`
	Text            responsesFormat `json:"text"`
}

type inputMessage struct {
	Role    string         `json:"role"`
	Content []inputContent `json:"content"`
}

type inputContent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type responsesFormat struct {
	Format struct {
		Type string `json:"type"`
	} `json:"format"`
}

type responsesResponse struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// text returns output_text, or the text parts of every output joined by
// newlines.
func (r *responsesResponse) text() string {
	if r.OutputText != "" {
		return r.OutputText
	}
	var parts []string
	for _, o := range r.Output {
		for _, c := range o.Content {
			if c.Text != "" {
				parts = append(parts, c.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}

// Analyze sends the photos to the model and normalizes its JSON answer.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, images []string) (*Draft, error) {
	if a.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	user := []inputContent{{Type: "input_text", Text: userPrompt()}}
	for _, img := range images[:min(len(images), domain.MaxImages)] {
		user = append(user, inputContent{Type: "input_image", ImageURL: img})
	}

	req := responsesRequest{
		Model: a.model,
		Input: []inputMessage{
			{Role: "system", Content: []inputContent{{Type: "input_text", Text: systemPrompt}}},
			{Role: "user", Content: user},
		},
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	}
	req.Text.Format.Type = "json_object"

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(a.apiKey).
		SetBody(req).
		Post("/v1/responses")
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI responses API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("OpenAI error (HTTP %d): %s", resp.StatusCode(), resp.String())
	}

	var out responsesResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("parsing OpenAI response: %w", err)
	}
	text := out.text()
	if text == "" {
		return nil, ErrMissingOutput
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("OpenAI returned non-JSON output: %s", truncate(text, maxErrorBodyBytes))
	}
	return Normalize(parsed), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
