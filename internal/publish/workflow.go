// Package publish turns drafts into live eBay listings and manages the
// listings it created.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/metrics"
	"github.com/donaldgifford/droplist/internal/seller"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// Result describes a successful publication.
type Result struct {
	ListingID     string `json:"listingId,omitempty"`
	OfferID       string `json:"offerId"`
	EbayListingID string `json:"ebayListingId"`
	CategoryID    string `json:"categoryId"`
}

// Workflow publishes drafts. A draft moves through
// validate, gate, token, policies, inventory item, offer, publish and
// record; a failure after the gate marks the draft failed.
type Workflow struct {
	store  store.Store
	sell   ebay.SellAPI
	tokens seller.TokenResolver
	log    *slog.Logger
	tracer trace.Tracer

	publicBaseURL string
	now           func() time.Time
}

// Option configures a Workflow or ListingService.
type Option func(*options)

type options struct {
	log           *slog.Logger
	publicBaseURL string
	now           func() time.Time
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithPublicBaseURL sets the externally reachable base URL draft image
// URLs are built from. eBay fetches the photos from there.
func WithPublicBaseURL(u string) Option {
	return func(o *options) {
		o.publicBaseURL = strings.TrimRight(u, "/")
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewWorkflow creates a Workflow with injected dependencies.
func NewWorkflow(s store.Store, sell ebay.SellAPI, tokens seller.TokenResolver, opts ...Option) *Workflow {
	o := buildOptions(opts)
	return &Workflow{
		store:         s,
		sell:          sell,
		tokens:        tokens,
		log:           o.log,
		tracer:        otel.Tracer("droplist/publish"),
		publicBaseURL: o.publicBaseURL,
		now:           o.now,
	}
}

// plan is a validated draft ready to be sent to eBay.
type plan struct {
	title       string
	description string
	categoryID  string
	condition   string
	price       string
	quantity    int
	sku         string
	marketplace string
	location    string
	imageURLs   []string
	aspects     map[string]string
}

// PublishDraft publishes one draft owned by userID.
func (w *Workflow) PublishDraft(ctx context.Context, userID, draftID string) (res *Result, err error) {
	start := w.now()
	ctx, span := w.tracer.Start(ctx, "publish.draft",
		trace.WithAttributes(attribute.String("draft.id", draftID)))
	defer func() {
		metrics.PublishDuration.Observe(time.Since(start).Seconds())
		metrics.PublishOutcomesTotal.WithLabelValues(outcome(err)).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	d, err := w.store.GetDraftForUser(ctx, userID, draftID)
	if err != nil {
		return nil, fmt.Errorf("loading draft %s: %w", draftID, err)
	}
	st, err := w.store.GetStore(ctx, d.StoreID)
	if err != nil {
		return nil, fmt.Errorf("loading store for draft %s: %w", draftID, err)
	}
	if !st.Connected() {
		return nil, ErrNotConnected
	}

	p, err := w.validate(d, st)
	if err != nil {
		return nil, err
	}
	w.step(ctx, span, d.ID, "validated")

	ok, err := w.store.TransitionDraftStatus(ctx, d.ID, domain.PublishableStatuses, domain.DraftPublishing)
	if err != nil {
		return nil, fmt.Errorf("gating draft %s: %w", d.ID, err)
	}
	if !ok {
		return nil, ErrConflictingOperation
	}
	w.step(ctx, span, d.ID, "publishing")

	defer func() {
		if err == nil {
			return
		}
		// The request context may already be cancelled.
		if mErr := w.store.MarkDraftFailed(context.WithoutCancel(ctx), d.ID, err.Error()); mErr != nil {
			w.log.Error("marking draft failed", "draft_id", d.ID, "error", mErr)
		}
	}()

	token, err := w.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, err
	}

	policies, err := w.resolvePolicies(ctx, st, token, p.marketplace)
	if err != nil {
		return nil, err
	}
	w.step(ctx, span, d.ID, "policies_resolved")

	if err := w.sell.UpsertInventoryItem(ctx, token, p.sku, ebay.InventoryItemInput{
		Title:       p.title,
		Description: p.description,
		Condition:   p.condition,
		ImageURLs:   p.imageURLs,
		Quantity:    p.quantity,
		Aspects:     p.aspects,
	}); err != nil {
		return nil, err
	}
	w.step(ctx, span, d.ID, "inventory_item_upserted")

	offerID, err := w.createOffer(ctx, d.ID, token, p, policies)
	if err != nil {
		return nil, err
	}
	w.step(ctx, span, d.ID, "offer_created")

	offerID, listingID, err := w.publishWithRecovery(ctx, d.ID, token, p, policies, offerID)
	if err != nil {
		return nil, err
	}
	w.step(ctx, span, d.ID, "published")

	res = &Result{OfferID: offerID, EbayListingID: listingID, CategoryID: p.categoryID}
	res.ListingID = w.record(ctx, d, st, p, offerID, listingID)
	return res, nil
}

func (w *Workflow) validate(d *domain.Draft, st *domain.Store) (*plan, error) {
	// Location is checked first so that no remote call is made without one.
	location := strings.TrimSpace(st.MerchantLocationKey)
	if location == "" {
		return nil, &MissingLocationError{Defaults: st.Defaults()}
	}

	p := &plan{
		title:       domain.TruncateTitle(strings.TrimSpace(d.Title)),
		description: d.Description,
		categoryID:  strings.TrimSpace(d.CategoryID),
		condition:   strings.TrimSpace(d.Condition),
		price:       strings.TrimSpace(d.Price),
		quantity:    domain.ClampQuantity(d.Quantity),
		sku:         strings.TrimSpace(d.SKU),
		location:    location,
		aspects:     d.Specifics,
	}
	switch {
	case p.title == "":
		return nil, domain.Required("title")
	case p.categoryID == "":
		return nil, domain.Required("categoryId")
	case p.price == "":
		return nil, domain.Required("price")
	}

	if p.condition == "" {
		p.condition = domain.DefaultCondition
	}
	if p.sku == "" {
		p.sku = domain.GenerateSKU(w.now())
	}

	p.marketplace = st.MarketplaceID
	if p.marketplace == "" {
		p.marketplace = d.MarketplaceID
	}
	if p.marketplace == "" {
		p.marketplace = domain.DefaultMarketplace
	}

	p.imageURLs = w.imageURLs(d)
	return p, nil
}

// imageURLs builds the public photo URLs eBay downloads from.
func (w *Workflow) imageURLs(d *domain.Draft) []string {
	n := min(len(d.Images), domain.MaxImages)
	urls := make([]string, 0, n)
	for i := range n {
		urls = append(urls, fmt.Sprintf("%s/api/v1/drafts/%s/images/%d",
			w.publicBaseURL, url.PathEscape(d.ID), i))
	}
	return urls
}

// resolvePolicies fills missing policy ids from the seller's first policy
// of each kind and saves what it found as store defaults.
func (w *Workflow) resolvePolicies(
	ctx context.Context,
	st *domain.Store,
	token, marketplace string,
) (ebay.ListingPolicies, error) {
	pol := ebay.ListingPolicies{
		PaymentPolicyID:     st.PaymentPolicyID,
		FulfillmentPolicyID: st.FulfillmentPolicyID,
		ReturnPolicyID:      st.ReturnPolicyID,
	}
	if complete(pol) {
		return pol, nil
	}

	var lookupErrs map[string]string
	found, err := w.sell.GetPolicies(ctx, token, marketplace)
	if err != nil {
		w.log.Warn("policy discovery failed", "store_id", st.ID, "error", err)
	} else {
		lookupErrs = found.Errors
		discovered := domain.Defaults{}
		if pol.PaymentPolicyID == "" && len(found.Payment) > 0 {
			pol.PaymentPolicyID = found.Payment[0].ID
			discovered.PaymentPolicyID = pol.PaymentPolicyID
		}
		if pol.FulfillmentPolicyID == "" && len(found.Fulfillment) > 0 {
			pol.FulfillmentPolicyID = found.Fulfillment[0].ID
			discovered.FulfillmentPolicyID = pol.FulfillmentPolicyID
		}
		if pol.ReturnPolicyID == "" && len(found.Return) > 0 {
			pol.ReturnPolicyID = found.Return[0].ID
			discovered.ReturnPolicyID = pol.ReturnPolicyID
		}

		if discovered != (domain.Defaults{}) {
			discovered.MarketplaceID = marketplace
			if err := w.store.UpdateStoreDefaults(ctx, st.ID, discovered); err != nil {
				w.log.Error("saving discovered policies", "store_id", st.ID, "error", err)
			}
			st.MarketplaceID = marketplace
			st.PaymentPolicyID = pol.PaymentPolicyID
			st.FulfillmentPolicyID = pol.FulfillmentPolicyID
			st.ReturnPolicyID = pol.ReturnPolicyID
		}
	}

	if !complete(pol) {
		return pol, &MissingPoliciesError{
			Payment:      pol.PaymentPolicyID == "",
			Fulfillment:  pol.FulfillmentPolicyID == "",
			Return:       pol.ReturnPolicyID == "",
			Defaults:     st.Defaults(),
			LookupErrors: lookupErrs,
		}
	}
	return pol, nil
}

func complete(p ebay.ListingPolicies) bool {
	return p.PaymentPolicyID != "" && p.FulfillmentPolicyID != "" && p.ReturnPolicyID != ""
}

// createOffer creates an offer and records its id on the draft right away,
// so an offer left unpublished can be found later.
func (w *Workflow) createOffer(
	ctx context.Context,
	draftID, token string,
	p *plan,
	policies ebay.ListingPolicies,
) (string, error) {
	offerID, err := w.sell.CreateOffer(ctx, token, ebay.OfferInput{
		SKU:                 p.sku,
		MarketplaceID:       p.marketplace,
		CategoryID:          p.categoryID,
		Description:         p.description,
		Price:               p.price,
		Currency:            domain.DefaultCurrency,
		Quantity:            p.quantity,
		MerchantLocationKey: p.location,
		Policies:            policies,
	})
	if err != nil {
		return "", err
	}
	if err := w.store.SetDraftOfferID(ctx, draftID, offerID); err != nil {
		w.log.Error("recording offer id", "draft_id", draftID, "offer_id", offerID, "error", err)
	}
	return offerID, nil
}

// publishWithRecovery publishes offerID. When eBay rejects the category it
// retries once with the top taxonomy suggestion on a new offer.
func (w *Workflow) publishWithRecovery(
	ctx context.Context,
	draftID, token string,
	p *plan,
	policies ebay.ListingPolicies,
	offerID string,
) (string, string, error) {
	listingID, err := w.sell.PublishOffer(ctx, token, offerID)
	if err == nil {
		return offerID, listingID, nil
	}

	apiErr, ok := ebay.AsAPIError(err)
	if !ok {
		return "", "", err
	}
	if apiErr.Code != ebay.ErrorCodeInvalidCategory {
		return "", "", rejected(apiErr)
	}

	metrics.CategoryRetriesTotal.Inc()
	suggestions, err := w.sell.CategorySuggestions(ctx, token, p.marketplace, p.title)
	if err != nil {
		return "", "", &CategoryLookupError{Rejection: apiErr, Err: err}
	}

	var next string
	if len(suggestions) > 0 {
		next = strings.TrimSpace(suggestions[0].CategoryID)
	}
	if next == "" || next == p.categoryID {
		return "", "", &InvalidCategoryError{CategoryID: p.categoryID, Suggestions: suggestions, Err: apiErr}
	}

	w.log.Info("retrying publish with suggested category",
		"draft_id", draftID, "from", p.categoryID, "to", next)
	if err := w.store.SetDraftCategory(ctx, draftID, next); err != nil {
		return "", "", fmt.Errorf("saving suggested category: %w", err)
	}
	p.categoryID = next

	offerID, err = w.createOffer(ctx, draftID, token, p, policies)
	if err != nil {
		return "", "", err
	}
	listingID, err = w.sell.PublishOffer(ctx, token, offerID)
	if err != nil {
		if apiErr, ok := ebay.AsAPIError(err); ok {
			return "", "", rejected(apiErr)
		}
		return "", "", err
	}
	return offerID, listingID, nil
}

// record writes the listing and links the draft to it. The offer is live
// by now, so failures are logged for reconciliation by sync instead of
// failing the publish.
func (w *Workflow) record(
	ctx context.Context,
	d *domain.Draft,
	st *domain.Store,
	p *plan,
	offerID, ebayListingID string,
) string {
	now := w.now()
	l := &domain.Listing{
		StoreID:       st.ID,
		EbayOfferID:   offerID,
		EbayListingID: domain.StringPtr(ebayListingID),
		SKU:           domain.StringPtr(p.sku),
		Title:         p.title,
		Description:   domain.StringPtr(p.description),
		Price:         domain.StringPtr(p.price),
		Quantity:      p.quantity,
		Status:        domain.ListingActive,
		MarketplaceID: domain.StringPtr(p.marketplace),
		CategoryID:    domain.StringPtr(p.categoryID),
		Condition:     domain.StringPtr(p.condition),
		Images:        p.imageURLs,
		ListedAt:      &now,
	}

	ctx = context.WithoutCancel(ctx)
	if err := w.store.UpsertListingByOfferID(ctx, l); err != nil {
		w.log.Error("recording published listing",
			"draft_id", d.ID, "offer_id", offerID, "ebay_listing_id", ebayListingID, "error", err)
		if err := w.store.SetDraftStatus(ctx, d.ID, domain.DraftPublished); err != nil {
			w.log.Error("marking draft published", "draft_id", d.ID, "offer_id", offerID, "error", err)
		}
		return ""
	}

	if err := w.store.MarkDraftPublished(ctx, d.ID, l.ID); err != nil {
		w.log.Error("linking draft to listing",
			"draft_id", d.ID, "listing_id", l.ID, "offer_id", offerID, "error", err)
	}
	return l.ID
}

func (w *Workflow) step(ctx context.Context, span trace.Span, draftID, name string) {
	span.AddEvent(name)
	w.log.DebugContext(ctx, "publish step", "draft_id", draftID, "step", name)
}

func rejected(apiErr *ebay.APIError) *PublishRejectedError {
	return &PublishRejectedError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Raw:     apiErr.Raw,
		Err:     apiErr,
	}
}

// outcome is the result label for PublishOutcomesTotal.
func outcome(err error) string {
	var (
		validation *domain.ValidationError
		location   *MissingLocationError
		policies   *MissingPoliciesError
	)
	switch {
	case err == nil:
		return "published"
	case errors.Is(err, ErrConflictingOperation):
		return "conflict"
	case errors.As(err, &validation), errors.As(err, &location), errors.As(err, &policies):
		return "invalid"
	default:
		return "failed"
	}
}
