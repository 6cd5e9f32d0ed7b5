package analyze_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/droplist/pkg/analyze"
)

const draftJSON = `{"title":"  Amethyst Geode Cluster  ","description":"<p>Purple</p>","categoryId":"8822",` +
	`"condition":"USED_EXCELLENT","price":"24.99","quantity":2,"specifics":{"Mineral":"Amethyst","Weight":120},` +
	`"confidence":0.8,"notes":["confirm weight"],"extractedText":"BRAZIL",` +
	`"pricingSignals":{"tier":"A","uniqueness":"Standout","shipping_cost_usd":6.5}}`

func TestOpenAIAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		wantErr    error
		wantErrMsg string
		check      func(t *testing.T, d *analyze.Draft)
	}{
		{
			name:   "output_text",
			apiKey: "sk-test",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/responses", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				var req map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "gpt-4o-mini", req["model"])
				assert.InDelta(t, 0.3, req["temperature"], 1e-9)
				assert.InDelta(t, 900, req["max_output_tokens"], 1e-9)

				input := req["input"].([]any)
				require.Len(t, input, 2)
				user := input[1].(map[string]any)["content"].([]any)
				require.Len(t, user, 3)
				assert.Equal(t, "input_image", user[1].(map[string]any)["type"])

				_ = json.NewEncoder(w).Encode(map[string]any{"output_text": draftJSON})
			},
			check: func(t *testing.T, d *analyze.Draft) {
				assert.Equal(t, "Amethyst Geode Cluster", d.Title)
				assert.Equal(t, "USED_EXCELLENT", d.Condition)
				assert.Equal(t, 2, d.Quantity)
				assert.Equal(t, map[string]string{"Mineral": "Amethyst", "Weight": "120"}, d.Specifics)
				assert.Equal(t, []string{"confirm weight"}, d.Notes)
				require.NotNil(t, d.PricingSignals)
				assert.Equal(t, "A", d.PricingSignals.Tier)
				require.NotNil(t, d.PricingSignals.ShippingCostUSD)
				assert.InDelta(t, 6.5, *d.PricingSignals.ShippingCostUSD, 1e-9)
			},
		},
		{
			name:   "output content parts",
			apiKey: "sk-test",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"output": []any{map[string]any{
						"content": []any{map[string]any{"type": "output_text", "text": `{"title":"Quartz"}`}},
					}},
				})
			},
			check: func(t *testing.T, d *analyze.Draft) {
				assert.Equal(t, "Quartz", d.Title)
				assert.Equal(t, analyze.DefaultPrice, d.Price)
				assert.Equal(t, analyze.DefaultCategoryID, d.CategoryID)
			},
		},
		{
			name:    "missing api key",
			handler: func(http.ResponseWriter, *http.Request) { t.Error("unexpected request") },
			wantErr: analyze.ErrMissingAPIKey,
		},
		{
			name:   "http error",
			apiKey: "sk-test",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limited"}`))
			},
			wantErrMsg: "OpenAI error (HTTP 429)",
		},
		{
			name:   "no output",
			apiKey: "sk-test",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"output":[]}`))
			},
			wantErr: analyze.ErrMissingOutput,
		},
		{
			name:   "non-json output",
			apiKey: "sk-test",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"output_text": "Here is your listing!"})
			},
			wantErrMsg: "non-JSON output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			a := analyze.NewOpenAIAnalyzer(tt.apiKey, analyze.WithEndpoint(srv.URL+"/"))
			d, err := a.Analyze(context.Background(), []string{
				"data:image/jpeg;base64,AAAA",
				"data:image/png;base64,BBBB",
			})

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				tt.check(t, d)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		parsed map[string]any
		check  func(t *testing.T, d *analyze.Draft)
	}{
		{
			name:   "empty",
			parsed: map[string]any{},
			check: func(t *testing.T, d *analyze.Draft) {
				assert.Equal(t, analyze.DefaultTitle, d.Title)
				assert.Equal(t, analyze.DefaultDescription, d.Description)
				assert.Equal(t, "USED_GOOD", d.Condition)
				assert.Equal(t, 1, d.Quantity)
				assert.InDelta(t, analyze.DefaultConfidence, d.Confidence, 1e-9)
				assert.Empty(t, d.Specifics)
				assert.NotNil(t, d.Notes)
				assert.Nil(t, d.PricingSignals)
			},
		},
		{
			name:   "numeric price and bad quantity",
			parsed: map[string]any{"price": 12.5, "quantity": -3.0, "condition": "MINT"},
			check: func(t *testing.T, d *analyze.Draft) {
				assert.Equal(t, "12.5", d.Price)
				assert.Equal(t, 1, d.Quantity)
				assert.Equal(t, "USED_GOOD", d.Condition)
			},
		},
		{
			name:   "fractional quantity floors",
			parsed: map[string]any{"quantity": 3.7},
			check: func(t *testing.T, d *analyze.Draft) {
				assert.Equal(t, 3, d.Quantity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, analyze.Normalize(tt.parsed))
		})
	}
}

func TestDraftRaw(t *testing.T) {
	t.Parallel()

	d := analyze.Normalize(map[string]any{"title": "Quartz"})
	var back map[string]any
	require.NoError(t, json.Unmarshal(d.Raw(), &back))
	assert.Equal(t, "Quartz", back["title"])
	assert.NotContains(t, back, "pricingSignals")
}
