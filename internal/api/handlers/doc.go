// Package handlers implements the HTTP handlers of the droplist API: Huma
// operations for the authenticated JSON endpoints and echo-native handlers
// for the eBay-facing callback, webhook, and photo routes.
package handlers

import (
	"context"
	"net/http"

	mw "github.com/donaldgifford/droplist/internal/api/middleware"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// OKResponse acknowledges an action with no other result.
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// caller returns the authenticated user id set by the auth middleware.
func caller(ctx context.Context) (string, error) {
	id, ok := mw.UserID(ctx)
	if !ok {
		return "", newHTTPError(http.StatusUnauthorized, "Unauthorized", nil)
	}
	return id, nil
}
