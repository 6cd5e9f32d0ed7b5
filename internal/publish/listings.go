package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/seller"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// ManualListingInput is a listing created directly, without a draft.
// Empty defaults are taken from the active store.
type ManualListingInput struct {
	Title               string
	Description         string
	SKU                 string
	CategoryID          string
	Condition           string
	Price               string
	Currency            string
	Quantity            int
	ImageURLs           []string
	MarketplaceID       string
	MerchantLocationKey string
	PaymentPolicyID     string
	FulfillmentPolicyID string
	ReturnPolicyID      string
}

// PriceQuantityInput is a partial update to a live listing.
type PriceQuantityInput struct {
	Price    *string
	Quantity *int
	Currency string
}

// ListingService creates listings directly and runs actions on listings
// that already have an eBay offer.
type ListingService struct {
	store  store.Store
	sell   ebay.SellAPI
	tokens seller.TokenResolver
	log    *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewListingService creates a ListingService.
func NewListingService(s store.Store, sell ebay.SellAPI, tokens seller.TokenResolver, opts ...Option) *ListingService {
	o := buildOptions(opts)
	return &ListingService{
		store:  s,
		sell:   sell,
		tokens: tokens,
		log:    o.log,
		tracer: otel.Tracer("droplist/publish"),
		now:    o.now,
	}
}

// Get returns a listing owned by userID.
func (s *ListingService) Get(ctx context.Context, userID, id string) (*domain.Listing, error) {
	l, err := s.store.GetListingForUser(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting listing %s: %w", id, err)
	}
	return l, nil
}

// List returns a page of the user's listings and the total count.
func (s *ListingService) List(ctx context.Context, userID string, q *store.ListingQuery) ([]domain.Listing, int, error) {
	listings, total, err := s.store.ListListings(ctx, userID, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing listings: %w", err)
	}
	return listings, total, nil
}

// CreateManual publishes a listing from in. Every resolved default is
// saved on the store before any remote call.
func (s *ListingService) CreateManual(ctx context.Context, userID string, in ManualListingInput) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "publish.manual")
	defer span.End()

	st, err := s.store.GetActiveStore(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("loading active store: %w", err)
	}
	if !st.Connected() {
		return nil, ErrNotConnected
	}

	title := domain.TruncateTitle(strings.TrimSpace(in.Title))
	sku := strings.TrimSpace(in.SKU)
	category := strings.TrimSpace(in.CategoryID)
	switch {
	case title == "":
		return nil, domain.Required("title")
	case sku == "":
		return nil, domain.Required("sku")
	case category == "":
		return nil, domain.Required("categoryId")
	}

	defaults := domain.Defaults{
		MarketplaceID:       firstNonEmpty(strings.TrimSpace(in.MarketplaceID), st.MarketplaceID, domain.DefaultMarketplace),
		MerchantLocationKey: firstNonEmpty(strings.TrimSpace(in.MerchantLocationKey), st.MerchantLocationKey),
		PaymentPolicyID:     firstNonEmpty(strings.TrimSpace(in.PaymentPolicyID), st.PaymentPolicyID),
		FulfillmentPolicyID: firstNonEmpty(strings.TrimSpace(in.FulfillmentPolicyID), st.FulfillmentPolicyID),
		ReturnPolicyID:      firstNonEmpty(strings.TrimSpace(in.ReturnPolicyID), st.ReturnPolicyID),
	}
	if defaults.MerchantLocationKey == "" {
		return nil, &MissingLocationError{Defaults: st.Defaults()}
	}
	policies := ebay.ListingPolicies{
		PaymentPolicyID:     defaults.PaymentPolicyID,
		FulfillmentPolicyID: defaults.FulfillmentPolicyID,
		ReturnPolicyID:      defaults.ReturnPolicyID,
	}
	if !complete(policies) {
		return nil, &MissingPoliciesError{
			Payment:     policies.PaymentPolicyID == "",
			Fulfillment: policies.FulfillmentPolicyID == "",
			Return:      policies.ReturnPolicyID == "",
			Defaults:    st.Defaults(),
		}
	}

	price, err := NormalizePrice(in.Price)
	if err != nil {
		return nil, err
	}
	quantity := domain.ClampQuantity(in.Quantity)
	currency := firstNonEmpty(strings.TrimSpace(in.Currency), domain.DefaultCurrency)
	condition := strings.TrimSpace(in.Condition)
	images := cleanURLs(in.ImageURLs)

	token, err := s.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateStoreDefaults(ctx, st.ID, defaults); err != nil {
		return nil, fmt.Errorf("saving store defaults: %w", err)
	}

	if err := s.sell.UpsertInventoryItem(ctx, token, sku, ebay.InventoryItemInput{
		Title:       title,
		Description: in.Description,
		Condition:   condition,
		ImageURLs:   images,
		Quantity:    quantity,
	}); err != nil {
		return nil, err
	}
	offerID, err := s.sell.CreateOffer(ctx, token, ebay.OfferInput{
		SKU:                 sku,
		MarketplaceID:       defaults.MarketplaceID,
		CategoryID:          category,
		Description:         in.Description,
		Price:               price,
		Currency:            currency,
		Quantity:            quantity,
		MerchantLocationKey: defaults.MerchantLocationKey,
		Policies:            policies,
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("offer.id", offerID))

	listingID, err := s.sell.PublishOffer(ctx, token, offerID)
	if err != nil {
		if apiErr, ok := ebay.AsAPIError(err); ok {
			return nil, rejected(apiErr)
		}
		return nil, err
	}

	now := s.now()
	l := &domain.Listing{
		StoreID:       st.ID,
		EbayOfferID:   offerID,
		EbayListingID: domain.StringPtr(listingID),
		SKU:           domain.StringPtr(sku),
		Title:         title,
		Description:   domain.StringPtr(in.Description),
		Price:         domain.StringPtr(price),
		Quantity:      quantity,
		Status:        domain.ListingActive,
		MarketplaceID: domain.StringPtr(defaults.MarketplaceID),
		CategoryID:    domain.StringPtr(category),
		Condition:     domain.StringPtr(condition),
		Images:        images,
		ListedAt:      &now,
	}
	res := &Result{OfferID: offerID, EbayListingID: listingID, CategoryID: category}
	if err := s.store.UpsertListingByOfferID(context.WithoutCancel(ctx), l); err != nil {
		s.log.Error("recording manual listing",
			"offer_id", offerID, "ebay_listing_id", listingID, "error", err)
		return res, nil
	}
	res.ListingID = l.ID
	return res, nil
}

// UpdatePriceQuantity changes price, quantity or both on the remote offer
// and mirrors the change locally.
func (s *ListingService) UpdatePriceQuantity(
	ctx context.Context,
	userID, id string,
	in PriceQuantityInput,
) (*domain.Listing, error) {
	l, st, err := s.loadForAction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var price *string
	if in.Price != nil && strings.TrimSpace(*in.Price) != "" {
		p, err := NormalizePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		price = &p
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "quantity must be a positive integer"}
	}
	if price == nil && in.Quantity == nil {
		return nil, &domain.ValidationError{Field: "price", Message: "Provide price and/or quantity"}
	}

	token, err := s.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, err
	}
	if err := s.sell.UpdateOfferPriceQuantity(ctx, token, l.EbayOfferID, ebay.PriceQuantity{
		Price:    price,
		Currency: firstNonEmpty(strings.TrimSpace(in.Currency), domain.DefaultCurrency),
		Quantity: in.Quantity,
	}); err != nil {
		return nil, err
	}

	if err := s.store.UpdateListingPriceQuantity(ctx, l.ID, price, in.Quantity); err != nil {
		return nil, fmt.Errorf("updating listing %s: %w", l.ID, err)
	}
	return s.Get(ctx, userID, l.ID)
}

// End withdraws the listing's offer and marks it ended.
func (s *ListingService) End(ctx context.Context, userID, id string) (*domain.Listing, error) {
	l, st, err := s.loadForAction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, err
	}
	if _, err := s.sell.WithdrawOffer(ctx, token, l.EbayOfferID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateListingStatus(ctx, l.ID, domain.ListingEnded); err != nil {
		return nil, fmt.Errorf("ending listing %s: %w", l.ID, err)
	}
	return s.Get(ctx, userID, l.ID)
}

// Republish publishes the listing's existing offer again.
func (s *ListingService) Republish(ctx context.Context, userID, id string) (*domain.Listing, error) {
	l, st, err := s.loadForAction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, err
	}
	listingID, err := s.sell.PublishOffer(ctx, token, l.EbayOfferID)
	if err != nil {
		if apiErr, ok := ebay.AsAPIError(err); ok {
			return nil, rejected(apiErr)
		}
		return nil, err
	}
	if err := s.store.MarkListingPublished(ctx, l.ID, listingID, s.now()); err != nil {
		return nil, fmt.Errorf("marking listing %s published: %w", l.ID, err)
	}
	return s.Get(ctx, userID, l.ID)
}

// loadForAction loads a listing and the store it belongs to. The listing
// must have an offer and its store must be connected.
func (s *ListingService) loadForAction(ctx context.Context, userID, id string) (*domain.Listing, *domain.Store, error) {
	l, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if l.EbayOfferID == "" {
		return nil, nil, ErrNoOffer
	}
	st, err := s.store.GetStore(ctx, l.StoreID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading store for listing %s: %w", id, err)
	}
	if !st.Connected() {
		return nil, nil, ErrNotConnected
	}
	return l, st, nil
}

// NormalizePrice parses a positive price and formats it with two decimals.
func NormalizePrice(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.Required("price")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return "", &domain.ValidationError{Field: "price", Message: "price must be a positive number"}
	}
	return strconv.FormatFloat(n, 'f', 2, 64), nil
}

func cleanURLs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, u := range in {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
