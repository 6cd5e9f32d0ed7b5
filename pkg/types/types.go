// Package domain defines the core business types for droplist: connected
// seller stores, AI-generated drafts, and the local mirror of eBay listings.
package domain

import (
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"time"
)

// DefaultMarketplace is used when neither the store nor the draft names one.
const DefaultMarketplace = "EBAY_US"

// DefaultCondition is the eBay condition enum applied when a draft has none.
const DefaultCondition = "USED_GOOD"

// DefaultCurrency is the only currency drafts are published in.
const DefaultCurrency = "USD"

// MaxTitleLength is eBay's hard limit on listing titles.
const MaxTitleLength = 80

// MaxImages is the number of photos a draft can carry.
const MaxImages = 8

// DraftStatus is the lifecycle state of a draft listing.
type DraftStatus string

// Draft status constants.
const (
	DraftProcessing     DraftStatus = "processing"
	DraftNeedsReview    DraftStatus = "needs_review"
	DraftReadyToPublish DraftStatus = "ready_to_publish"
	DraftPublishing     DraftStatus = "publishing"
	DraftPublished      DraftStatus = "published"
	DraftFailed         DraftStatus = "failed"
)

// PublishableStatuses lists the idle states of a draft: the ones it may be
// edited, regenerated or published from.
var PublishableStatuses = []DraftStatus{
	DraftNeedsReview,
	DraftReadyToPublish,
	DraftFailed,
}

// IsPublishable reports whether a draft in status s may enter publishing.
func (s DraftStatus) IsPublishable() bool {
	return slices.Contains(PublishableStatuses, s)
}

// IsEditable reports whether a caller may set status s directly.
func (s DraftStatus) IsEditable() bool {
	return s == DraftNeedsReview || s == DraftReadyToPublish
}

// ListingStatus values used locally. Synced offers carry eBay's own status
// lowercased, so the set is open.
const (
	ListingActive = "active"
	ListingEnded  = "ended"
)

// Conditions accepted by the inventory item API for drafts.
var Conditions = []string{
	"NEW",
	"USED_EXCELLENT",
	"USED_VERY_GOOD",
	"USED_GOOD",
	"USED_ACCEPTABLE",
}

// Store is a connected eBay seller account. At most one store per user is
// active; the active store is the one listing operations use.
type Store struct {
	ID           string `json:"id"                      db:"id"`
	UserID       string `json:"user_id"                 db:"user_id"`
	EbayUserID   string `json:"ebay_user_id,omitempty"  db:"ebay_user_id"`
	EbayUsername string `json:"ebay_username,omitempty" db:"ebay_username"`
	StoreName    string `json:"store_name"              db:"store_name"`

	// Credentials. Never serialized.
	AccessToken  string     `json:"-" db:"access_token"`
	RefreshToken string     `json:"-" db:"refresh_token"`
	TokenExpiry  *time.Time `json:"token_expiry,omitempty" db:"token_expiry"`

	// Listing defaults
	MarketplaceID       string `json:"marketplace_id"                  db:"marketplace_id"`
	PaymentPolicyID     string `json:"payment_policy_id,omitempty"     db:"payment_policy_id"`
	FulfillmentPolicyID string `json:"fulfillment_policy_id,omitempty" db:"fulfillment_policy_id"`
	ReturnPolicyID      string `json:"return_policy_id,omitempty"      db:"return_policy_id"`
	MerchantLocationKey string `json:"merchant_location_key,omitempty" db:"merchant_location_key"`

	Active    bool      `json:"active"     db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Connected reports whether the store holds an access token.
func (s *Store) Connected() bool {
	return s.AccessToken != ""
}

// Marketplace returns the store marketplace or the default.
func (s *Store) Marketplace() string {
	if s.MarketplaceID != "" {
		return s.MarketplaceID
	}
	return DefaultMarketplace
}

// Defaults is the subset of store fields a listing needs from its seller.
type Defaults struct {
	MarketplaceID       string `json:"marketplaceId,omitempty"`
	PaymentPolicyID     string `json:"paymentPolicyId,omitempty"`
	FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty"`
	ReturnPolicyID      string `json:"returnPolicyId,omitempty"`
	MerchantLocationKey string `json:"merchantLocationKey,omitempty"`
}

// Defaults returns the store's current listing defaults.
func (s *Store) Defaults() Defaults {
	return Defaults{
		MarketplaceID:       s.MarketplaceID,
		PaymentPolicyID:     s.PaymentPolicyID,
		FulfillmentPolicyID: s.FulfillmentPolicyID,
		ReturnPolicyID:      s.ReturnPolicyID,
		MerchantLocationKey: s.MerchantLocationKey,
	}
}

// Draft is a listing being prepared from photos before it is published.
type Draft struct {
	ID            string      `json:"id"             db:"id"`
	StoreID       string      `json:"store_id"       db:"store_id"`
	Status        DraftStatus `json:"status"         db:"status"`
	Images        []string    `json:"-"              db:"images"`
	ImageCount    int         `json:"image_count"    db:"-"`
	MarketplaceID string      `json:"marketplace_id" db:"marketplace_id"`

	Title       string            `json:"title"       db:"title"`
	Description string            `json:"description" db:"description"`
	CategoryID  string            `json:"category_id" db:"category_id"`
	Condition   string            `json:"condition"   db:"condition"`
	Price       string            `json:"price"       db:"price"`
	Quantity    int               `json:"quantity"    db:"quantity"`
	SKU         string            `json:"sku"         db:"sku"`
	Specifics   map[string]string `json:"specifics"   db:"specifics"`

	AINotes         []string        `json:"ai_notes"                    db:"ai_notes"`
	AIExtractedText string          `json:"ai_extracted_text,omitempty" db:"ai_extracted_text"`
	AIRaw           json.RawMessage `json:"ai_raw,omitempty"            db:"ai_raw"`
	Error           string          `json:"error,omitempty"             db:"error"`

	// OfferID is recorded as soon as an offer is created so unpublished
	// offers can be found and withdrawn later.
	OfferID            string `json:"offer_id,omitempty"             db:"offer_id"`
	PublishedListingID string `json:"published_listing_id,omitempty" db:"published_listing_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Listing mirrors a remote eBay offer. EbayOfferID is the natural key.
type Listing struct {
	ID            string     `json:"id"                        db:"id"`
	StoreID       string     `json:"store_id"                  db:"store_id"`
	EbayOfferID   string     `json:"ebay_offer_id"             db:"ebay_offer_id"`
	EbayListingID *string    `json:"ebay_listing_id,omitempty" db:"ebay_listing_id"`
	SKU           *string    `json:"sku,omitempty"             db:"sku"`
	Title         string     `json:"title"                     db:"title"`
	Description   *string    `json:"description,omitempty"     db:"description"`
	Price         *string    `json:"price,omitempty"           db:"price"`
	Quantity      int        `json:"quantity"                  db:"quantity"`
	Status        string     `json:"status"                    db:"status"`
	MarketplaceID *string    `json:"marketplace_id,omitempty"  db:"marketplace_id"`
	CategoryID    *string    `json:"category_id,omitempty"     db:"category_id"`
	Condition     *string    `json:"condition,omitempty"       db:"condition"`
	Images        []string   `json:"images"                    db:"images"`
	ListedAt      *time.Time `json:"listed_at,omitempty"       db:"listed_at"`
	CreatedAt     time.Time  `json:"created_at"                db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"                db:"updated_at"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TruncateTitle cuts a title to MaxTitleLength runes.
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= MaxTitleLength {
		return title
	}
	return string(r[:MaxTitleLength])
}

// ClampQuantity enforces the quantity >= 1 invariant.
func ClampQuantity(q int) int {
	return max(q, 1)
}

// GenerateSKU returns the timestamp-based SKU used when a draft has none.
func GenerateSKU(now time.Time) string {
	return "drop-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// ErrConflictingOperation is returned when a draft is not idle: a publish
// is in flight, it is being analyzed, or it is already published.
var ErrConflictingOperation = errors.New("draft is busy or already published")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// Required returns a ValidationError for a missing field.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}
