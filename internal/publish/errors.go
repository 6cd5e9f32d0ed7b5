package publish

import (
	"errors"
	"fmt"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/seller"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// Errors shared with the packages the workflow is built on. Callers
// classify failures against these names with errors.Is.
var (
	ErrNotFound            = store.ErrNotFound
	ErrNoStore             = seller.ErrNoStore
	ErrNotConnected        = seller.ErrNotConnected
	ErrTokenUnavailable    = ebay.ErrTokenUnavailable
	ErrTokenRefreshFailed  = ebay.ErrTokenRefreshFailed
	ErrRemoteRequestFailed = ebay.ErrRemoteRequestFailed
	ErrMalformedResponse   = ebay.ErrMalformedResponse

	ErrConflictingOperation = domain.ErrConflictingOperation

	// ErrNoOffer is returned for listings without an eBay offer id.
	ErrNoOffer = errors.New("listing has no ebayOfferId")
)

// ValidationError is re-exported from the domain package.
type ValidationError = domain.ValidationError

// TokenRefreshError is re-exported from the ebay package.
type TokenRefreshError = ebay.TokenRefreshError

// MissingLocationError is returned when the store has no merchant location.
// No remote call is made in this case.
type MissingLocationError struct {
	Defaults domain.Defaults
}

func (e *MissingLocationError) Error() string {
	return "Missing merchantLocationKey"
}

// MissingPoliciesError is returned when business policies are still
// missing after discovery.
type MissingPoliciesError struct {
	Payment     bool
	Fulfillment bool
	Return      bool
	Defaults    domain.Defaults
	// LookupErrors carries per-category discovery failures.
	LookupErrors map[string]string
}

func (e *MissingPoliciesError) Error() string {
	return "Missing eBay policy IDs (payment/fulfillment/return). " +
		"Create policies in Seller Hub, or load them via diagnostics."
}

// Missing lists the names of the missing policy kinds.
func (e *MissingPoliciesError) Missing() []string {
	var out []string
	if e.Payment {
		out = append(out, "payment")
	}
	if e.Fulfillment {
		out = append(out, "fulfillment")
	}
	if e.Return {
		out = append(out, "return")
	}
	return out
}

// PublishRejectedError is a publish failure eBay reported that the workflow
// could not recover from.
type PublishRejectedError struct {
	Code    int
	Message string
	Raw     string
	Err     *ebay.APIError
}

func (e *PublishRejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("eBay rejected the offer: %d %s", e.Code, e.Message)
	}
	return "eBay rejected the offer: " + e.Raw
}

func (e *PublishRejectedError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// InvalidCategoryError is returned when eBay rejects the category and no
// better suggestion exists.
type InvalidCategoryError struct {
	CategoryID  string
	Suggestions []ebay.CategorySuggestion
	Err         *ebay.APIError
}

func (e *InvalidCategoryError) Error() string {
	return "eBay rejected the categoryId as invalid. Select another leaf category and try again."
}

func (e *InvalidCategoryError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// CategoryLookupError is returned when eBay rejects the category and the
// taxonomy lookup for a replacement fails, usually for lack of the taxonomy
// scope on the seller token.
type CategoryLookupError struct {
	Rejection *ebay.APIError
	Err       error
}

func (e *CategoryLookupError) Error() string {
	return "eBay rejected the categoryId as invalid. To auto-fix, reconnect eBay with taxonomy scope and retry."
}

func (e *CategoryLookupError) Unwrap() error {
	return e.Err
}

// Hint is the remediation shown with a CategoryLookupError.
func (e *CategoryLookupError) Hint() string {
	return "Re-connect eBay (commerce.taxonomy.readonly is requested), then retry publish."
}
