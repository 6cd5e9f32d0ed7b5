package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/droplist/internal/publish"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// ListingService is the listing lifecycle used by the handlers.
type ListingService interface {
	Get(ctx context.Context, userID, id string) (*domain.Listing, error)
	List(ctx context.Context, userID string, q *store.ListingQuery) ([]domain.Listing, int, error)
	CreateManual(ctx context.Context, userID string, in publish.ManualListingInput) (*publish.Result, error)
	UpdatePriceQuantity(ctx context.Context, userID, id string, in publish.PriceQuantityInput) (*domain.Listing, error)
	End(ctx context.Context, userID, id string) (*domain.Listing, error)
	Republish(ctx context.Context, userID, id string) (*domain.Listing, error)
}

// ListingsHandler handles listing endpoints.
type ListingsHandler struct {
	listings ListingService
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(l ListingService) *ListingsHandler {
	return &ListingsHandler{listings: l}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	Status  string `query:"status"   doc:"Filter by status, e.g. active or ended"`
	StoreID string `query:"storeId"  doc:"Filter by store"`
	Limit   int    `query:"limit"    doc:"Number of results (default 50)" minimum:"0" maximum:"1000"`
	Offset  int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy string `query:"order_by" doc:"Sort field"                     enum:"updated_at,listed_at,title,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// ListingIDInput addresses one listing.
type ListingIDInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// ListingOutput is a single listing response.
type ListingOutput struct {
	Body *domain.Listing
}

// CreateListingInput creates a listing without a draft. Empty defaults are
// taken from the active store.
type CreateListingInput struct {
	Body struct {
		Title               string   `json:"title"`
		Description         string   `json:"description,omitempty"`
		SKU                 string   `json:"sku"`
		CategoryID          string   `json:"categoryId"`
		Condition           string   `json:"condition,omitempty"`
		Price               string   `json:"price"                         example:"19.99"`
		Currency            string   `json:"currency,omitempty"            example:"USD"`
		Quantity            int      `json:"quantity,omitempty"`
		ImageURLs           []string `json:"imageUrls,omitempty"`
		MarketplaceID       string   `json:"marketplaceId,omitempty"`
		MerchantLocationKey string   `json:"merchantLocationKey,omitempty"`
		PaymentPolicyID     string   `json:"paymentPolicyId,omitempty"`
		FulfillmentPolicyID string   `json:"fulfillmentPolicyId,omitempty"`
		ReturnPolicyID      string   `json:"returnPolicyId,omitempty"`
	}
}

// CreateListingOutput reports the published listing.
type CreateListingOutput struct {
	Body *publish.Result
}

// UpdateListingInput changes price and/or quantity.
type UpdateListingInput struct {
	ID   string `path:"id" doc:"Listing UUID"`
	Body struct {
		Price    *string `json:"price,omitempty"    example:"21.50"`
		Quantity *int    `json:"quantity,omitempty"`
		Currency string  `json:"currency,omitempty" example:"USD"`
	}
}

// --- Handlers ---

// List returns the caller's listings.
func (h *ListingsHandler) List(ctx context.Context, input *ListListingsInput) (*ListListingsOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	q := &store.ListingQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.StoreID != "" {
		q.StoreID = &input.StoreID
	}

	listings, total, err := h.listings.List(ctx, userID, q)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Get returns one of the caller's listings.
func (h *ListingsHandler) Get(ctx context.Context, input *ListingIDInput) (*ListingOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	l, err := h.listings.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &ListingOutput{Body: l}, nil
}

// Create publishes a listing directly.
func (h *ListingsHandler) Create(ctx context.Context, input *CreateListingInput) (*CreateListingOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	b := input.Body
	res, err := h.listings.CreateManual(ctx, userID, publish.ManualListingInput{
		Title:               b.Title,
		Description:         b.Description,
		SKU:                 b.SKU,
		CategoryID:          b.CategoryID,
		Condition:           b.Condition,
		Price:               b.Price,
		Currency:            b.Currency,
		Quantity:            b.Quantity,
		ImageURLs:           b.ImageURLs,
		MarketplaceID:       b.MarketplaceID,
		MerchantLocationKey: b.MerchantLocationKey,
		PaymentPolicyID:     b.PaymentPolicyID,
		FulfillmentPolicyID: b.FulfillmentPolicyID,
		ReturnPolicyID:      b.ReturnPolicyID,
	})
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &CreateListingOutput{Body: res}, nil
}

// Update changes the price and/or quantity of a live listing.
func (h *ListingsHandler) Update(ctx context.Context, input *UpdateListingInput) (*ListingOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	l, err := h.listings.UpdatePriceQuantity(ctx, userID, input.ID, publish.PriceQuantityInput{
		Price:    input.Body.Price,
		Quantity: input.Body.Quantity,
		Currency: input.Body.Currency,
	})
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &ListingOutput{Body: l}, nil
}

// End withdraws the listing's offer.
func (h *ListingsHandler) End(ctx context.Context, input *ListingIDInput) (*ListingOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	l, err := h.listings.End(ctx, userID, input.ID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &ListingOutput{Body: l}, nil
}

// Republish publishes the listing's existing offer again.
func (h *ListingsHandler) Republish(ctx context.Context, input *ListingIDInput) (*ListingOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	l, err := h.listings.Republish(ctx, userID, input.ID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &ListingOutput{Body: l}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	remoteErrors := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusNotFound,
		http.StatusUnprocessableEntity,
		http.StatusBadGateway,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create a listing",
		Description:   "Creates the inventory item and offer directly and publishes it.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Errors:        remoteErrors,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns the caller's listings with optional status and store filters and pagination.",
		Tags:        []string{"listings"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "update-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/update",
		Summary:     "Update price and quantity",
		Tags:        []string{"listings"},
		Errors:      remoteErrors,
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID: "end-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/end",
		Summary:     "End a listing",
		Description: "Withdraws the offer on eBay and marks the listing ended.",
		Tags:        []string{"listings"},
		Errors:      remoteErrors,
	}, h.End)

	huma.Register(api, huma.Operation{
		OperationID: "republish-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/publish",
		Summary:     "Republish a listing",
		Description: "Publishes the listing's existing offer again.",
		Tags:        []string{"listings"},
		Errors:      remoteErrors,
	}, h.Republish)
}
