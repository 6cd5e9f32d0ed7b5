package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/droplist/internal/api/middleware"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.RegisteredClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func newAuthServer(cfg mw.AuthConfig) *echo.Echo {
	e := echo.New()
	e.Use(mw.Auth(cfg))
	whoami := func(c echo.Context) error {
		id, _ := mw.UserID(c.Request().Context())
		return c.String(http.StatusOK, id)
	}
	e.GET("/api/v1/drafts", whoami)
	e.GET("/api/v1/ebay/callback", whoami)
	e.GET("/healthz", whoami)
	return e
}

func TestAuth(t *testing.T) {
	t.Parallel()

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name       string
		cfg        mw.AuthConfig
		path       string
		header     map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid token",
			cfg:  mw.AuthConfig{Secret: testSecret},
			path: "/api/v1/drafts",
			header: map[string]string{
				"Authorization": "Bearer " + signed(t, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
					jwt.SigningMethodHS256, []byte(testSecret)),
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
		{
			name:       "missing token",
			cfg:        mw.AuthConfig{Secret: testSecret},
			path:       "/api/v1/drafts",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
		{
			name: "expired token",
			cfg:  mw.AuthConfig{Secret: testSecret},
			path: "/api/v1/drafts",
			header: map[string]string{
				"Authorization": "Bearer " + signed(t, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: past},
					jwt.SigningMethodHS256, []byte(testSecret)),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			cfg:  mw.AuthConfig{Secret: testSecret},
			path: "/api/v1/drafts",
			header: map[string]string{
				"Authorization": "Bearer " + signed(t, jwt.RegisteredClaims{Subject: "user-1"},
					jwt.SigningMethodHS256, []byte("other")),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong issuer",
			cfg:  mw.AuthConfig{Secret: testSecret, Issuer: "https://id.example.com"},
			path: "/api/v1/drafts",
			header: map[string]string{
				"Authorization": "Bearer " + signed(t, jwt.RegisteredClaims{Subject: "user-1", Issuer: "https://evil"},
					jwt.SigningMethodHS256, []byte(testSecret)),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "no subject",
			cfg:  mw.AuthConfig{Secret: testSecret},
			path: "/api/v1/drafts",
			header: map[string]string{
				"Authorization": "Bearer " + signed(t, jwt.RegisteredClaims{ExpiresAt: future},
					jwt.SigningMethodHS256, []byte(testSecret)),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "disabled uses header",
			cfg:        mw.AuthConfig{Disabled: true},
			path:       "/api/v1/drafts",
			header:     map[string]string{mw.UserIDHeader: "dev-user"},
			wantStatus: http.StatusOK,
			wantBody:   "dev-user",
		},
		{
			name:       "disabled without header",
			cfg:        mw.AuthConfig{Disabled: true},
			path:       "/api/v1/drafts",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "public route skipped",
			cfg: mw.AuthConfig{
				Secret:  testSecret,
				Skipper: mw.PublicRoutes("/api/v1/ebay/callback"),
			},
			path:       "/api/v1/ebay/callback",
			wantStatus: http.StatusOK,
		},
		{
			name: "non-api route skipped",
			cfg: mw.AuthConfig{
				Secret:  testSecret,
				Skipper: mw.PublicRoutes(),
			},
			path:       "/healthz",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newAuthServer(tt.cfg)
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
