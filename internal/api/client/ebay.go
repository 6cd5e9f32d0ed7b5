package client

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// SyncResult summarizes an offer sync.
type SyncResult struct {
	OK       bool `json:"ok"`
	Upserted int  `json:"upserted"`
	Skipped  int  `json:"skipped"`
}

// Quota is the server's eBay call budget.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// LocationRequest describes a ship-from location.
type LocationRequest struct {
	MerchantLocationKey string `json:"merchantLocationKey"`
	Country             string `json:"country"`
	PostalCode          string `json:"postalCode"`
	Phone               string `json:"phone"`
}

// ConnectURL returns the eBay consent URL for the caller.
func (c *Client) ConnectURL(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.get(ctx, "/api/v1/ebay/connect", &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// Diagnostics returns the raw diagnostics document.
func (c *Client) Diagnostics(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/v1/ebay/diagnostics", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Sync mirrors the store's offers into local listings. An empty storeID
// syncs the active store.
func (c *Client) Sync(ctx context.Context, storeID string) (*SyncResult, error) {
	path := "/api/v1/ebay/sync"
	if storeID != "" {
		path += "?storeId=" + url.QueryEscape(storeID)
	}
	var res SyncResult
	if err := c.post(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateDefaults sets marketplace and policy defaults. Empty fields are
// unchanged.
func (c *Client) UpdateDefaults(ctx context.Context, d domain.Defaults) (*domain.Store, error) {
	var resp struct {
		Store *domain.Store `json:"store"`
	}
	if err := c.post(ctx, "/api/v1/ebay/defaults", d, &resp); err != nil {
		return nil, err
	}
	return resp.Store, nil
}

// CreateLocation creates an inventory location and returns its key.
func (c *Client) CreateLocation(ctx context.Context, req LocationRequest) (string, error) {
	var resp struct {
		MerchantLocationKey string `json:"merchantLocationKey"`
	}
	if err := c.post(ctx, "/api/v1/ebay/locations", req, &resp); err != nil {
		return "", err
	}
	return resp.MerchantLocationKey, nil
}

// OptInBusinessPolicies requests the business policies program.
func (c *Client) OptInBusinessPolicies(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/v1/ebay/business-policies/opt-in", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Quota returns the server's eBay call budget.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
