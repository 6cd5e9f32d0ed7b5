package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const taxonomyPath = "/commerce/taxonomy/v1"

// CategoryTreeID returns the default category tree for a marketplace. The
// answer is cached for the life of the client.
func (c *SellClient) CategoryTreeID(ctx context.Context, token, marketplaceID string) (string, error) {
	c.mu.Lock()
	id, ok := c.treeIDs[marketplaceID]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	var resp struct {
		CategoryTreeID string `json:"categoryTreeId"`
	}
	path := taxonomyPath + "/get_default_category_tree_id?marketplace_id=" + url.QueryEscape(marketplaceID)
	if err := c.call(ctx, "get_category_tree_id", http.MethodGet, path, token, nil, &resp); err != nil {
		return "", fmt.Errorf("looking up category tree for %s: %w", marketplaceID, err)
	}
	if resp.CategoryTreeID == "" {
		return "", fmt.Errorf("%w: no categoryTreeId for %s", ErrMalformedResponse, marketplaceID)
	}

	c.mu.Lock()
	c.treeIDs[marketplaceID] = resp.CategoryTreeID
	c.mu.Unlock()
	return resp.CategoryTreeID, nil
}

// CategorySuggestions asks the taxonomy API which categories fit query.
func (c *SellClient) CategorySuggestions(ctx context.Context, token, marketplaceID, query string) ([]CategorySuggestion, error) {
	treeID, err := c.CategoryTreeID(ctx, token, marketplaceID)
	if err != nil {
		return nil, err
	}

	var resp struct {
		CategorySuggestions []struct {
			Category CategorySuggestion `json:"category"`
		} `json:"categorySuggestions"`
	}
	path := taxonomyPath + "/category_tree/" + url.PathEscape(treeID) +
		"/get_category_suggestions?q=" + url.QueryEscape(query)
	if err := c.call(ctx, "get_category_suggestions", http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching category suggestions: %w", err)
	}

	out := make([]CategorySuggestion, 0, len(resp.CategorySuggestions))
	for _, s := range resp.CategorySuggestions {
		out = append(out, s.Category)
	}
	return out, nil
}
