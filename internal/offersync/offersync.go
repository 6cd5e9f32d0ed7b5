// Package offersync mirrors a seller's remote eBay offers into the local
// listing store.
package offersync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/metrics"
	"github.com/donaldgifford/droplist/internal/seller"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// ErrReconnect is returned when eBay rejects the token and no refresh
// token is stored. It matches ebay.ErrTokenUnavailable.
var ErrReconnect = fmt.Errorf("Token expired; reconnect eBay: %w", ebay.ErrTokenUnavailable) //nolint:staticcheck // user-facing message

// Result summarizes one sync run.
type Result struct {
	OK       bool `json:"ok"`
	Upserted int  `json:"upserted"`
	Skipped  int  `json:"skipped"`
}

// Service syncs offers for connected stores.
type Service struct {
	store     store.Store
	tokens    seller.TokenResolver
	paginator *ebay.Paginator
	log       *slog.Logger
}

// NewService creates a sync Service. Offers are read through the
// paginator, which should wrap the Sell API client.
func NewService(s store.Store, tokens seller.TokenResolver, p *ebay.Paginator, log *slog.Logger) *Service {
	return &Service{store: s, tokens: tokens, paginator: p, log: log}
}

// SyncForUser syncs storeID, or the user's active store when storeID is
// empty. Stores owned by someone else are reported as not found.
func (s *Service) SyncForUser(ctx context.Context, userID, storeID string) (*Result, error) {
	var (
		st  *domain.Store
		err error
	)
	if storeID == "" {
		st, err = s.store.GetActiveStore(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, seller.ErrNoStore
		}
	} else {
		st, err = s.store.GetStore(ctx, storeID)
		if err == nil && st.UserID != userID {
			err = store.ErrNotFound
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}
	if !st.Connected() {
		return nil, seller.ErrNotConnected
	}
	return s.SyncStore(ctx, st)
}

// SyncAll syncs every connected store in turn. A failing store is logged
// and does not stop the others.
func (s *Service) SyncAll(ctx context.Context) error {
	stores, err := s.store.ListConnectedStores(ctx)
	if err != nil {
		return fmt.Errorf("listing connected stores: %w", err)
	}

	var failed int
	for i := range stores {
		st := &stores[i]
		res, err := s.SyncStore(ctx, st)
		if err != nil {
			failed++
			s.log.Error("store sync failed", "store_id", st.ID, "error", err)
			continue
		}
		s.log.Info("store synced", "store_id", st.ID, "upserted", res.Upserted, "skipped", res.Skipped)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d store syncs failed", failed, len(stores))
	}
	return nil
}

// SyncStore fetches every offer of st and upserts it by offer id. A 401
// from eBay triggers one forced token refresh and retry.
func (s *Service) SyncStore(ctx context.Context, st *domain.Store) (res *Result, err error) {
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.SyncRunsTotal.WithLabelValues(result).Inc()
	}()

	token, err := s.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, err
	}

	pages, err := s.paginator.Paginate(ctx, token)
	if apiErr, ok := ebay.AsAPIError(err); ok && apiErr.HTTPStatus == http.StatusUnauthorized {
		s.log.Info("offer fetch unauthorized, refreshing token", "store_id", st.ID)
		token, err = s.tokens.ForceRefresh(ctx, st)
		if errors.Is(err, ebay.ErrTokenUnavailable) {
			return nil, ErrReconnect
		}
		if err != nil {
			return nil, err
		}
		pages, err = s.paginator.Paginate(ctx, token)
	}
	if err != nil {
		return nil, err
	}

	res = &Result{OK: true}
	for _, raw := range pages.Offers {
		l, ok := parseOffer(raw)
		if !ok {
			res.Skipped++
			metrics.SyncOffersSkipped.Inc()
			continue
		}
		l.StoreID = st.ID
		if err := s.store.UpsertListingByOfferID(ctx, l); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("upserting offer %s: %w", l.EbayOfferID, ctxErr)
			}
			s.log.Warn("skipping offer", "store_id", st.ID, "offer_id", l.EbayOfferID, "error", err)
			res.Skipped++
			metrics.SyncOffersSkipped.Inc()
			continue
		}
		res.Upserted++
		metrics.SyncOffersUpserted.Inc()
	}

	s.log.Debug("offers synced",
		"store_id", st.ID,
		"pages", pages.PagesUsed,
		"stopped_at", pages.StoppedAt,
		"upserted", res.Upserted,
		"skipped", res.Skipped,
	)
	return res, nil
}

// parseOffer maps one remote offer onto a listing. Offers without an id
// are rejected.
func parseOffer(raw json.RawMessage) (*domain.Listing, bool) {
	var o map[string]any
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, false
	}

	offerID := firstString(lookup(o, "offerId"), lookup(o, "offer", "offerId"))
	if offerID == "" {
		return nil, false
	}

	l := &domain.Listing{
		EbayOfferID:   offerID,
		SKU:           domain.StringPtr(firstString(lookup(o, "sku"), lookup(o, "inventoryItemGroupKey"))),
		MarketplaceID: domain.StringPtr(firstString(lookup(o, "marketplaceId"))),
		CategoryID:    domain.StringPtr(firstString(lookup(o, "categoryId"))),
		EbayListingID: domain.StringPtr(firstString(lookup(o, "listing", "listingId"))),
		Quantity:      1,
		Status:        domain.ListingActive,
		Images:        []string{},
	}

	// listingDescription is HTML on the offer itself; some summaries nest
	// a title and description under it instead.
	var description string
	switch ld := o["listingDescription"].(type) {
	case string:
		description = ld
	case map[string]any:
		description = firstString(ld["description"])
	}
	l.Title = firstString(
		lookup(o, "listingDescription", "title"),
		lookup(o, "listingDescription", "description"),
		o["title"],
	)
	if l.Title == "" {
		l.Title = "Untitled"
	}
	l.Title = domain.TruncateTitle(l.Title)
	l.Description = domain.StringPtr(description)

	if q, ok := o["availableQuantity"].(float64); ok {
		l.Quantity = int(min(max(q, 0), math.MaxInt32))
	}
	if status := firstString(o["status"], o["offerStatus"]); status != "" {
		l.Status = strings.ToLower(status)
	}
	l.Price = domain.StringPtr(firstNumberString(
		lookup(o, "pricingSummary", "price", "value"),
		lookup(o, "pricingSummary", "price"),
		lookup(o, "pricingSummary", "pricingSummary", "price", "value"),
	))
	return l, true
}

// lookup walks nested objects by key.
func lookup(m map[string]any, path ...string) any {
	var cur any = m
	for _, k := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[k]
	}
	return cur
}

func firstString(vals ...any) string {
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstNumberString returns the first value that is a number or numeric
// string, formatted as a decimal string.
func firstNumberString(vals ...any) string {
	for _, v := range vals {
		switch t := v.(type) {
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case string:
			if _, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return strings.TrimSpace(t)
			}
		}
	}
	return ""
}
