package ebay

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrorCodeInvalidCategory is returned by publishOffer when the offer's
// category is not a valid leaf category.
const ErrorCodeInvalidCategory = 25005

var (
	// ErrRemoteRequestFailed matches every *APIError.
	ErrRemoteRequestFailed = errors.New("eBay request failed")

	// ErrMalformedResponse is returned when a 2xx response lacks a field the
	// caller depends on or cannot be decoded.
	ErrMalformedResponse = errors.New("malformed eBay response")

	// ErrTokenUnavailable is returned when a refresh is needed but no refresh
	// token is stored.
	ErrTokenUnavailable = errors.New("no refresh token available")

	// ErrTokenRefreshFailed matches every *TokenRefreshError.
	ErrTokenRefreshFailed = errors.New("token refresh failed")
)

// APIError is a non-2xx response from the Sell, Commerce or Identity APIs.
// Code and Message come from the first entry of eBay's errors array.
type APIError struct {
	HTTPStatus int    `json:"status"`
	Path       string `json:"path"`
	Code       int    `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	Raw        string `json:"raw,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("eBay API error (status %d) %s: %d %s", e.HTTPStatus, e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("eBay API error (status %d) %s: %s", e.HTTPStatus, e.Path, e.Raw)
}

// Is makes errors.Is(err, ErrRemoteRequestFailed) true for API errors.
func (e *APIError) Is(target error) bool {
	return target == ErrRemoteRequestFailed
}

type apiErrorBody struct {
	Errors []struct {
		ErrorID     json.Number `json:"errorId"`
		Message     string      `json:"message"`
		LongMessage string      `json:"longMessage"`
	} `json:"errors"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func newAPIError(status int, path string, body []byte) *APIError {
	e := &APIError{HTTPStatus: status, Path: path, Raw: string(body)}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return e
	}

	if len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		if n, err := strconv.Atoi(first.ErrorID.String()); err == nil {
			e.Code = n
		}
		e.Message = first.Message
		if e.Message == "" {
			e.Message = first.LongMessage
		}
		return e
	}

	if parsed.Error != "" {
		e.Message = parsed.Error
		if parsed.ErrorDescription != "" {
			e.Message += ": " + parsed.ErrorDescription
		}
	}
	return e
}

// TokenRefreshError is a failed refresh-token exchange.
type TokenRefreshError struct {
	Status int
	Body   string
}

func (e *TokenRefreshError) Error() string {
	return fmt.Sprintf("token refresh failed (status %d): %s", e.Status, e.Body)
}

// Unwrap lets errors.Is match ErrTokenRefreshFailed.
func (e *TokenRefreshError) Unwrap() error {
	return ErrTokenRefreshFailed
}

// AsAPIError returns the *APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
