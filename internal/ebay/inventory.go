package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const inventoryPath = "/sell/inventory/v1"

// UpsertInventoryItem creates or replaces the inventory item for sku.
// Aspect values become single-element arrays.
func (c *SellClient) UpsertInventoryItem(ctx context.Context, token, sku string, in InventoryItemInput) error {
	item := inventoryItem{
		Condition: in.Condition,
		Product: inventoryProduct{
			Title:       in.Title,
			Description: in.Description,
			ImageURLs:   in.ImageURLs,
		},
	}
	item.Availability.ShipToLocationAvailability.Quantity = in.Quantity

	if len(in.Aspects) > 0 {
		item.Product.Aspects = make(map[string][]string, len(in.Aspects))
		for k, v := range in.Aspects {
			if k == "" || v == "" {
				continue
			}
			item.Product.Aspects[k] = []string{v}
		}
	}

	path := inventoryPath + "/inventory_item/" + url.PathEscape(sku)
	if err := c.call(ctx, "upsert_inventory_item", http.MethodPut, path, token, item, nil); err != nil {
		return fmt.Errorf("upserting inventory item %s: %w", sku, err)
	}
	return nil
}

// CreateOffer creates an unpublished fixed-price offer and returns its id.
func (c *SellClient) CreateOffer(ctx context.Context, token string, in OfferInput) (string, error) {
	req := offerRequest{
		SKU:                 in.SKU,
		MarketplaceID:       in.MarketplaceID,
		Format:              "FIXED_PRICE",
		AvailableQuantity:   in.Quantity,
		CategoryID:          in.CategoryID,
		ListingDescription:  in.Description,
		ListingPolicies:     in.Policies,
		PricingSummary:      pricingSummary{Price: Amount{Value: in.Price, Currency: in.Currency}},
		MerchantLocationKey: in.MerchantLocationKey,
	}

	var resp struct {
		OfferID string `json:"offerId"`
	}
	if err := c.call(ctx, "create_offer", http.MethodPost, inventoryPath+"/offer", token, req, &resp); err != nil {
		return "", fmt.Errorf("creating offer for %s: %w", in.SKU, err)
	}
	if resp.OfferID == "" {
		return "", fmt.Errorf("%w: createOffer returned no offerId", ErrMalformedResponse)
	}
	return resp.OfferID, nil
}

// PublishOffer turns an offer into a live listing. The listing id may be
// empty when eBay omits it.
func (c *SellClient) PublishOffer(ctx context.Context, token, offerID string) (string, error) {
	var resp struct {
		ListingID string `json:"listingId"`
	}
	path := inventoryPath + "/offer/" + url.PathEscape(offerID) + "/publish"
	if err := c.call(ctx, "publish_offer", http.MethodPost, path, token, nil, &resp); err != nil {
		return "", fmt.Errorf("publishing offer %s: %w", offerID, err)
	}
	return resp.ListingID, nil
}

// WithdrawOffer ends the listing behind a published offer.
func (c *SellClient) WithdrawOffer(ctx context.Context, token, offerID string) (string, error) {
	var resp struct {
		ListingID string `json:"listingId"`
	}
	path := inventoryPath + "/offer/" + url.PathEscape(offerID) + "/withdraw"
	if err := c.call(ctx, "withdraw_offer", http.MethodPost, path, token, nil, &resp); err != nil {
		return "", fmt.Errorf("withdrawing offer %s: %w", offerID, err)
	}
	return resp.ListingID, nil
}

// readOnlyOfferFields are returned by getOffer but rejected by updateOffer.
var readOnlyOfferFields = []string{"offerId", "sku", "marketplaceId", "format", "status", "listing"}

// UpdateOfferPriceQuantity changes price and/or quantity of an offer. The
// offer is read first and written back whole because updateOffer replaces
// every field.
func (c *SellClient) UpdateOfferPriceQuantity(ctx context.Context, token, offerID string, in PriceQuantity) error {
	if in.Price == nil && in.Quantity == nil {
		return nil
	}

	path := inventoryPath + "/offer/" + url.PathEscape(offerID)

	var offer map[string]json.RawMessage
	if err := c.call(ctx, "get_offer", http.MethodGet, path, token, nil, &offer); err != nil {
		return fmt.Errorf("reading offer %s: %w", offerID, err)
	}
	if offer == nil {
		offer = make(map[string]json.RawMessage)
	}
	for _, f := range readOnlyOfferFields {
		delete(offer, f)
	}

	if in.Price != nil {
		currency := in.Currency
		if currency == "" {
			currency = "USD"
		}
		raw, err := json.Marshal(pricingSummary{Price: Amount{Value: *in.Price, Currency: currency}})
		if err != nil {
			return fmt.Errorf("marshaling price: %w", err)
		}
		offer["pricingSummary"] = raw
	}
	if in.Quantity != nil {
		offer["availableQuantity"] = json.RawMessage(strconv.Itoa(*in.Quantity))
	}

	if err := c.call(ctx, "update_offer", http.MethodPut, path, token, offer, nil); err != nil {
		return fmt.Errorf("updating offer %s: %w", offerID, err)
	}
	return nil
}

// GetOffers returns one page of the seller's offers.
func (c *SellClient) GetOffers(ctx context.Context, token string, limit, offset int) (*OfferPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	var wire struct {
		OfferPage
		OfferSummaries []json.RawMessage `json:"offerSummaries"`
	}
	if err := c.call(ctx, "get_offers", http.MethodGet, inventoryPath+"/offer?"+q.Encode(), token, nil, &wire); err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}
	page := wire.OfferPage
	if len(page.Offers) == 0 {
		page.Offers = wire.OfferSummaries
	}
	return &page, nil
}

// GetInventoryLocations lists the seller's merchant locations.
func (c *SellClient) GetInventoryLocations(ctx context.Context, token string) ([]InventoryLocation, error) {
	var resp struct {
		Locations []InventoryLocation `json:"locations"`
	}
	if err := c.call(ctx, "get_locations", http.MethodGet, inventoryPath+"/location", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing inventory locations: %w", err)
	}
	return resp.Locations, nil
}

// CreateInventoryLocation registers a ship-from location under key.
func (c *SellClient) CreateInventoryLocation(ctx context.Context, token, key string, in LocationInput) error {
	body := map[string]any{
		"location": map[string]any{
			"address": map[string]string{
				"country":    in.Country,
				"postalCode": in.PostalCode,
			},
		},
		"phone": in.Phone,
	}
	path := inventoryPath + "/location/" + url.PathEscape(key)
	if err := c.call(ctx, "create_location", http.MethodPost, path, token, body, nil); err != nil {
		return fmt.Errorf("creating inventory location %s: %w", key, err)
	}
	return nil
}
