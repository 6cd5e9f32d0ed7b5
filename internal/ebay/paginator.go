package ebay

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	defaultPageSize = 200
	defaultMaxPages = 25
)

// OfferLister fetches one page of offers.
type OfferLister interface {
	GetOffers(ctx context.Context, token string, limit, offset int) (*OfferPage, error)
}

// Paginator walks every page of a seller's offers.
type Paginator struct {
	client   OfferLister
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client OfferLister, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult holds every offer collected across pages.
type PaginateResult struct {
	Offers    []json.RawMessage
	PagesUsed int
	StoppedAt string // "no_more_results", "max_pages"
}

// Paginate fetches pages until eBay reports no next page, a page comes
// back short, or maxPages is reached.
func (p *Paginator) Paginate(ctx context.Context, token string) (*PaginateResult, error) {
	result := &PaginateResult{}

	for page := range p.maxPages {
		offset := page * p.pageSize

		resp, err := p.client.GetOffers(ctx, token, p.pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("fetching offers page %d: %w", page, err)
		}

		result.PagesUsed++
		result.Offers = append(result.Offers, resp.Offers...)

		if resp.Next == "" || len(resp.Offers) < p.pageSize {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
