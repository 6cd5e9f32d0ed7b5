package handlers

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/oauthstate"
	"github.com/donaldgifford/droplist/internal/publish"
)

// HTTPError is the JSON error body returned by every endpoint:
// {"error": "...", ...hints}. It satisfies huma.StatusError.
type HTTPError struct {
	Status  int
	Message string
	Hints   map[string]any
}

func (e *HTTPError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (e *HTTPError) GetStatus() int { return e.Status }

// MarshalJSON flattens the hints next to the error message.
func (e *HTTPError) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(e.Hints)+1)
	maps.Copy(body, e.Hints)
	body["error"] = e.Message
	return json.Marshal(body)
}

func newHTTPError(status int, msg string, hints map[string]any) *HTTPError {
	return &HTTPError{Status: status, Message: msg, Hints: hints}
}

// ToHTTPError classifies err into a status code and hint fields.
func ToHTTPError(err error) *HTTPError {
	var (
		httpErr      *HTTPError
		validation   *publish.ValidationError
		location     *publish.MissingLocationError
		policies     *publish.MissingPoliciesError
		invalidCat   *publish.InvalidCategoryError
		lookup       *publish.CategoryLookupError
		rejected     *publish.PublishRejectedError
		refresh      *publish.TokenRefreshError
		remoteAPIErr *ebay.APIError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr

	case errors.As(err, &validation):
		return newHTTPError(http.StatusBadRequest, validation.Error(), map[string]any{
			"field": validation.Field,
		})

	case errors.As(err, &location):
		return newHTTPError(http.StatusBadRequest, location.Error(), map[string]any{
			"storeDefaults": location.Defaults,
		})

	case errors.As(err, &policies):
		hints := map[string]any{
			"storeDefaults": policies.Defaults,
			"missing":       policies.Missing(),
		}
		if len(policies.LookupErrors) > 0 {
			hints["policyLookupErrors"] = policies.LookupErrors
		}
		return newHTTPError(http.StatusBadRequest, policies.Error(), hints)

	case errors.As(err, &invalidCat):
		hints := map[string]any{
			"categoryId":  invalidCat.CategoryID,
			"suggestions": invalidCat.Suggestions,
		}
		if invalidCat.Err != nil {
			hints["ebayError"] = ebayErrorHint(invalidCat.Err)
		}
		return newHTTPError(http.StatusBadRequest, invalidCat.Error(), hints)

	case errors.As(err, &lookup):
		hints := map[string]any{"hint": lookup.Hint()}
		if lookup.Rejection != nil {
			hints["ebayError"] = ebayErrorHint(lookup.Rejection)
		}
		return newHTTPError(http.StatusBadRequest, lookup.Error(), hints)

	case errors.Is(err, publish.ErrNotConnected),
		errors.Is(err, publish.ErrNoStore),
		errors.Is(err, publish.ErrNoOffer),
		errors.Is(err, oauthstate.ErrInvalidState):
		return newHTTPError(http.StatusBadRequest, err.Error(), nil)

	case errors.Is(err, publish.ErrNotFound):
		return newHTTPError(http.StatusNotFound, "Not found", nil)

	case errors.Is(err, publish.ErrConflictingOperation):
		return newHTTPError(http.StatusConflict, err.Error(), nil)

	case errors.As(err, &refresh):
		return newHTTPError(http.StatusUnauthorized, "Token refresh failed; reconnect eBay", map[string]any{
			"ebayError": map[string]any{"status": refresh.Status, "raw": refresh.Body},
		})

	case errors.Is(err, publish.ErrTokenUnavailable):
		return newHTTPError(http.StatusUnauthorized, err.Error(), nil)

	case errors.As(err, &rejected):
		return newHTTPError(http.StatusUnprocessableEntity, rejected.Error(), map[string]any{
			"ebayError": map[string]any{"code": rejected.Code, "message": rejected.Message},
		})

	case errors.Is(err, ebay.ErrDailyLimitReached):
		return newHTTPError(http.StatusTooManyRequests, err.Error(), nil)

	case errors.As(err, &remoteAPIErr):
		return newHTTPError(http.StatusBadGateway, "eBay request failed", map[string]any{
			"ebayError": ebayErrorHint(remoteAPIErr),
		})

	case errors.Is(err, publish.ErrMalformedResponse):
		return newHTTPError(http.StatusBadGateway, err.Error(), nil)

	default:
		return newHTTPError(http.StatusInternalServerError, err.Error(), nil)
	}
}

func ebayErrorHint(e *ebay.APIError) map[string]any {
	hint := map[string]any{"status": e.HTTPStatus, "raw": e.Raw}
	if e.Code != 0 {
		hint["code"] = e.Code
		hint["message"] = e.Message
	}
	return hint
}

// writeError renders err for echo-native handlers.
func writeError(c echo.Context, err error) error {
	he := ToHTTPError(err)
	return c.JSON(he.Status, he)
}
