package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/donaldgifford/droplist/internal/metrics"
)

// refreshBuffer is how long before expiry a token is treated as stale.
const refreshBuffer = 5 * time.Minute

// Credentials are the stored OAuth tokens of one seller.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Expiry       *time.Time
}

// TokenResult is a usable access token. Refreshed is true when the token
// was just obtained from eBay and the caller should persist it.
type TokenResult struct {
	AccessToken string
	Expiry      time.Time
	Refreshed   bool
}

// TokenManager refreshes seller user tokens and drives the authorization
// code grant. It never persists anything; callers store the results.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	authURL      string
	redirectURL  string
	scopes       []string
	client       *http.Client
	nowFunc      func() time.Time
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.tokenURL = u
	}
}

// WithAuthURL overrides the user consent endpoint.
func WithAuthURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.authURL = u
	}
}

// WithRedirectURL sets the RuName or redirect URI registered with eBay.
func WithRedirectURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.redirectURL = u
	}
}

// WithScopes overrides the requested scopes.
func WithScopes(scopes []string) TokenOption {
	return func(m *TokenManager) {
		m.scopes = scopes
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// NewTokenManager creates a TokenManager for the given application keys.
// Endpoints default to the sandbox.
func NewTokenManager(clientID, clientSecret string, opts ...TokenOption) *TokenManager {
	ep := EndpointsFor(Sandbox)
	m := &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     ep.TokenURL,
		authURL:      ep.AuthURL,
		scopes:       SellerScopes,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NeedsRefresh reports whether c must be refreshed before use at now.
func NeedsRefresh(c Credentials, now time.Time) bool {
	if c.AccessToken == "" || c.RefreshToken == "" || c.Expiry == nil {
		return true
	}
	return !now.Before(c.Expiry.Add(-refreshBuffer))
}

// EnsureValid returns a usable access token, refreshing when the stored one
// is missing or within five minutes of expiry.
func (m *TokenManager) EnsureValid(ctx context.Context, c Credentials) (TokenResult, error) {
	if !NeedsRefresh(c, m.nowFunc()) {
		return TokenResult{AccessToken: c.AccessToken, Expiry: *c.Expiry}, nil
	}
	if c.RefreshToken == "" {
		return TokenResult{}, ErrTokenUnavailable
	}
	return m.Refresh(ctx, c.RefreshToken)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Refresh exchanges a refresh token for a new access token.
func (m *TokenManager) Refresh(ctx context.Context, refreshToken string) (TokenResult, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"scope":         {strings.Join(m.scopes, " ")},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return TokenResult{}, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(m.clientID + ":" + m.clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := m.client.Do(req)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return TokenResult{}, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return TokenResult{}, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return TokenResult{}, &TokenRefreshError{Status: resp.StatusCode, Body: string(body)}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return TokenResult{}, fmt.Errorf("parsing token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return TokenResult{}, fmt.Errorf("%w: token response without access_token", ErrMalformedResponse)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	return TokenResult{
		AccessToken: tokenResp.AccessToken,
		Expiry:      m.nowFunc().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
		Refreshed:   true,
	}, nil
}

func (m *TokenManager) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
		RedirectURL:  m.redirectURL,
		Scopes:       m.scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   m.authURL,
			TokenURL:  m.tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// AuthCodeURL returns the consent URL the seller is sent to.
func (m *TokenManager) AuthCodeURL(state string) string {
	return m.oauthConfig().AuthCodeURL(state)
}

// Exchange trades an authorization code for user tokens.
func (m *TokenManager) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.client)
	tok, err := m.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return tok, nil
}
