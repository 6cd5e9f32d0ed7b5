package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the caller identity when auth is disabled.
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	// Secret is the HS256 shared secret.
	Secret string
	// Issuer, when set, must match the iss claim.
	Issuer string
	// Disabled trusts UserIDHeader instead of verifying a token.
	Disabled bool
	// Skipper exempts requests from authentication.
	Skipper func(c echo.Context) bool
}

// Auth returns Echo middleware that resolves the caller's user id from a
// bearer JWT (the sub claim) and stores it in the request context.
func Auth(cfg AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(c) {
				return next(c)
			}

			var (
				userID string
				err    error
			)
			if cfg.Disabled {
				userID = strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
				if userID == "" {
					err = errors.New("missing " + UserIDHeader + " header")
				}
			} else {
				userID, err = ParseBearer(c.Request().Header.Get(echo.HeaderAuthorization), cfg.Secret, cfg.Issuer)
			}
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized",
				})
			}

			c.Set("user_id", userID)
			req := c.Request()
			c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
			return next(c)
		}
	}
}

// ParseBearer verifies an "Authorization: Bearer <jwt>" header value and
// returns the token subject.
func ParseBearer(header, secret, issuer string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errors.New("missing bearer token")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, opts...); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user id stored in ctx.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}

// PublicRoutes returns a Skipper that exempts everything outside /api/
// plus the given route patterns.
func PublicRoutes(paths ...string) func(echo.Context) bool {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return func(c echo.Context) bool {
		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}
		if !strings.HasPrefix(path, "/api/") {
			return true
		}
		_, ok := set[path]
		return ok
	}
}
