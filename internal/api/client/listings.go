package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Status  string
	StoreID string
	Limit   int
	Offset  int
	OrderBy string
}

// PublishResult identifies a published offer.
type PublishResult struct {
	ListingID     string `json:"listingId,omitempty"`
	OfferID       string `json:"offerId"`
	EbayListingID string `json:"ebayListingId"`
	CategoryID    string `json:"categoryId"`
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.StoreID != "" {
		q.Set("storeId", params.StoreID)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListing changes price and/or quantity. Nil fields are unchanged.
func (c *Client) UpdateListing(ctx context.Context, id string, price *string, quantity *int) (*domain.Listing, error) {
	body := map[string]any{}
	if price != nil {
		body["price"] = *price
	}
	if quantity != nil {
		body["quantity"] = *quantity
	}

	var l domain.Listing
	if err := c.post(ctx, "/api/v1/listings/"+url.PathEscape(id)+"/update", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// EndListing withdraws a listing's offer.
func (c *Client) EndListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.post(ctx, "/api/v1/listings/"+url.PathEscape(id)+"/end", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// RepublishListing publishes a listing's existing offer again.
func (c *Client) RepublishListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.post(ctx, "/api/v1/listings/"+url.PathEscape(id)+"/publish", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
