package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// probePaths are logged on their first success and on every failure.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Authenticated requests also carry
// the caller's user id.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probesSeen sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			level := slog.LevelInfo

			if _, probe := probePaths[path]; probe {
				if status < http.StatusBadRequest {
					if _, seen := probesSeen.LoadOrStore(path, struct{}{}); seen {
						return err
					}
				} else {
					level = slog.LevelWarn
				}
			} else if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if userID, ok := UserID(c.Request().Context()); ok {
				attrs = append(attrs, "user_id", userID)
			}
			log.Log(c.Request().Context(), level, "request", attrs...)

			return err
		}
	}
}
