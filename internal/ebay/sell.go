package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/droplist/internal/metrics"
)

// SellAPI is the subset of the eBay Sell, Commerce and Identity APIs the
// listing workflows use.
type SellAPI interface {
	GetPolicies(ctx context.Context, token, marketplaceID string) (*Policies, error)
	GetInventoryLocations(ctx context.Context, token string) ([]InventoryLocation, error)
	CreateInventoryLocation(ctx context.Context, token, key string, in LocationInput) error
	UpsertInventoryItem(ctx context.Context, token, sku string, in InventoryItemInput) error
	CreateOffer(ctx context.Context, token string, in OfferInput) (string, error)
	PublishOffer(ctx context.Context, token, offerID string) (string, error)
	UpdateOfferPriceQuantity(ctx context.Context, token, offerID string, in PriceQuantity) error
	WithdrawOffer(ctx context.Context, token, offerID string) (string, error)
	GetOffers(ctx context.Context, token string, limit, offset int) (*OfferPage, error)
	CategorySuggestions(ctx context.Context, token, marketplaceID, query string) ([]CategorySuggestion, error)
	GetIdentity(ctx context.Context, token string) (*Identity, error)
	GetAccount(ctx context.Context, token string) (*Account, error)
	OptInToProgram(ctx context.Context, token, programType string) error
	GetOptedInPrograms(ctx context.Context, token string) ([]Program, error)
}

// SellClient is an HTTP client for the eBay REST APIs a seller token can
// reach.
type SellClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
	tracer      trace.Tracer

	mu      sync.Mutex
	treeIDs map[string]string
}

var _ SellAPI = (*SellClient)(nil)

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithBaseURL overrides the API host.
func WithBaseURL(u string) SellOption {
	return func(c *SellClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithSellHTTPClient overrides the default HTTP client.
func WithSellHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// WithRateLimiter makes every call wait on r first.
func WithRateLimiter(r *RateLimiter) SellOption {
	return func(c *SellClient) {
		c.rateLimiter = r
	}
}

// NewSellClient creates a client for the sandbox unless WithBaseURL says
// otherwise.
func NewSellClient(opts ...SellOption) *SellClient {
	c := &SellClient{
		baseURL: EndpointsFor(Sandbox).APIURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		tracer:  otel.Tracer("droplist/ebay"),
		treeIDs: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs an authenticated JSON call. body and out may be nil.
// Non-2xx responses become *APIError.
func (c *SellClient) Request(ctx context.Context, method, path, token string, body, out any) error {
	return c.call(ctx, "request", method, path, token, body, out)
}

func (c *SellClient) call(ctx context.Context, op, method, path, token string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "ebay."+op, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("ebay.path", path),
		))
	status := "error"
	defer func() {
		metrics.EbayAPICallsTotal.WithLabelValues(op, status).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			status = "limited"
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling %s request: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Language", "en-US")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing %s request: %w", op, err)
	}
	defer resp.Body.Close()

	status = fmt.Sprintf("%dxx", resp.StatusCode/100)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, path, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrMalformedResponse, path, err)
	}
	return nil
}
