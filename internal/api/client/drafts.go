package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// DraftsResponse wraps a page of drafts.
type DraftsResponse struct {
	Drafts []domain.Draft `json:"drafts"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// DraftPatch is a partial draft edit. Nil fields are unchanged.
type DraftPatch struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	CategoryID  *string           `json:"categoryId,omitempty"`
	Condition   *string           `json:"condition,omitempty"`
	Price       *string           `json:"price,omitempty"`
	Quantity    *int              `json:"quantity,omitempty"`
	Status      *string           `json:"status,omitempty"`
	Specifics   map[string]string `json:"specifics,omitempty"`
}

// CreateDraft uploads photos, given as data URLs, for analysis.
func (c *Client) CreateDraft(ctx context.Context, images []string) (*domain.Draft, error) {
	var d domain.Draft
	if err := c.post(ctx, "/api/v1/drafts", map[string]any{"images": images}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDrafts returns the caller's drafts, optionally filtered by status.
func (c *Client) ListDrafts(ctx context.Context, status string, limit, offset int) (*DraftsResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	path := "/api/v1/drafts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp DraftsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDraft returns one draft.
func (c *Client) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	var d domain.Draft
	if err := c.get(ctx, "/api/v1/drafts/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDraft applies a partial edit.
func (c *Client) UpdateDraft(ctx context.Context, id string, p *DraftPatch) (*domain.Draft, error) {
	var d domain.Draft
	if err := c.post(ctx, "/api/v1/drafts/"+url.PathEscape(id)+"/update", p, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// RegenerateDraft re-runs analysis on the stored photos.
func (c *Client) RegenerateDraft(ctx context.Context, id string) (*domain.Draft, error) {
	var d domain.Draft
	if err := c.post(ctx, "/api/v1/drafts/"+url.PathEscape(id)+"/regenerate", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// PublishDraft publishes a draft to eBay.
func (c *Client) PublishDraft(ctx context.Context, id string) (*PublishResult, error) {
	var res PublishResult
	if err := c.post(ctx, "/api/v1/drafts/"+url.PathEscape(id)+"/publish", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
