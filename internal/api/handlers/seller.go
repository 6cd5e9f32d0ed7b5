package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/droplist/internal/seller"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// SellerService manages the connection to the seller's eBay account.
type SellerService interface {
	ConnectURL(ctx context.Context, userID string) (string, error)
	Callback(ctx context.Context, code, state string) (*domain.Store, error)
	Diagnostics(ctx context.Context, userID string) (*seller.Diagnostics, error)
	OptInBusinessPolicies(ctx context.Context, userID string) error
	Programs(ctx context.Context, userID string) (*seller.ProgramStatus, error)
	CreateLocation(ctx context.Context, userID string, req seller.LocationRequest) (string, error)
	UpdateDefaults(ctx context.Context, userID string, d domain.Defaults) (*domain.Store, error)
}

// SellerHandler handles eBay account endpoints.
type SellerHandler struct {
	seller SellerService
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(s SellerService) *SellerHandler {
	return &SellerHandler{seller: s}
}

// --- Input/Output types ---

// ConnectOutput carries the eBay consent URL.
type ConnectOutput struct {
	Body struct {
		URL string `json:"url" doc:"eBay authorization URL to redirect the seller to"`
	}
}

// DiagnosticsOutput is the account diagnostics snapshot.
type DiagnosticsOutput struct {
	Body *seller.Diagnostics
}

// UpdateDefaultsInput sets the store's publishing defaults. Empty fields
// are left unchanged.
type UpdateDefaultsInput struct {
	Body struct {
		MarketplaceID       string `json:"marketplaceId,omitempty"       example:"EBAY_US"`
		PaymentPolicyID     string `json:"paymentPolicyId,omitempty"`
		FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty"`
		ReturnPolicyID      string `json:"returnPolicyId,omitempty"`
	}
}

// StoreOutput reports the updated store.
type StoreOutput struct {
	Body struct {
		OK    bool          `json:"ok"`
		Store *domain.Store `json:"store"`
	}
}

// CreateLocationInput describes the ship-from location.
type CreateLocationInput struct {
	Body struct {
		MerchantLocationKey string `json:"merchantLocationKey" example:"home"`
		Country             string `json:"country"             example:"US"`
		PostalCode          string `json:"postalCode"          example:"95125"`
		Phone               string `json:"phone"`
	}
}

// CreateLocationOutput reports the created location key.
type CreateLocationOutput struct {
	Body struct {
		OK                  bool   `json:"ok"`
		MerchantLocationKey string `json:"merchantLocationKey"`
	}
}

// OptInOutput acknowledges the program opt-in request.
type OptInOutput struct {
	Body struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
}

// ProgramsOutput reports the account's program opt-ins.
type ProgramsOutput struct {
	Body *seller.ProgramStatus
}

// CallbackResponse is returned when the eBay account is connected.
type CallbackResponse struct {
	Connected bool          `json:"connected"`
	Store     *domain.Store `json:"store"`
}

// --- Handlers ---

// Connect starts the OAuth flow.
func (h *SellerHandler) Connect(ctx context.Context, _ *struct{}) (*ConnectOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := h.seller.ConnectURL(ctx, userID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	resp := &ConnectOutput{}
	resp.Body.URL = u
	return resp, nil
}

// Diagnostics reports what eBay knows about the connected account.
func (h *SellerHandler) Diagnostics(ctx context.Context, _ *struct{}) (*DiagnosticsOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	d, err := h.seller.Diagnostics(ctx, userID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &DiagnosticsOutput{Body: d}, nil
}

// UpdateDefaults stores marketplace and policy defaults.
func (h *SellerHandler) UpdateDefaults(ctx context.Context, input *UpdateDefaultsInput) (*StoreOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	st, err := h.seller.UpdateDefaults(ctx, userID, domain.Defaults{
		MarketplaceID:       input.Body.MarketplaceID,
		PaymentPolicyID:     input.Body.PaymentPolicyID,
		FulfillmentPolicyID: input.Body.FulfillmentPolicyID,
		ReturnPolicyID:      input.Body.ReturnPolicyID,
	})
	if err != nil {
		return nil, ToHTTPError(err)
	}
	resp := &StoreOutput{}
	resp.Body.OK = true
	resp.Body.Store = st
	return resp, nil
}

// CreateLocation creates an inventory location and makes it the default.
func (h *SellerHandler) CreateLocation(ctx context.Context, input *CreateLocationInput) (*CreateLocationOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	key, err := h.seller.CreateLocation(ctx, userID, seller.LocationRequest{
		MerchantLocationKey: input.Body.MerchantLocationKey,
		Country:             input.Body.Country,
		PostalCode:          input.Body.PostalCode,
		Phone:               input.Body.Phone,
	})
	if err != nil {
		return nil, ToHTTPError(err)
	}
	resp := &CreateLocationOutput{}
	resp.Body.OK = true
	resp.Body.MerchantLocationKey = key
	return resp, nil
}

// OptIn requests the business policies program.
func (h *SellerHandler) OptIn(ctx context.Context, _ *struct{}) (*OptInOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.seller.OptInBusinessPolicies(ctx, userID); err != nil {
		return nil, ToHTTPError(err)
	}
	resp := &OptInOutput{}
	resp.Body.OK = true
	resp.Body.Message = "Opt-in requested. eBay can take up to 24 hours to enable business policies."
	return resp, nil
}

// Programs reports the account's program opt-ins.
func (h *SellerHandler) Programs(ctx context.Context, _ *struct{}) (*ProgramsOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	p, err := h.seller.Programs(ctx, userID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &ProgramsOutput{Body: p}, nil
}

// Callback completes the OAuth flow. eBay redirects the seller's browser
// here, so the state nonce identifies the user instead of a bearer token.
func (h *SellerHandler) Callback(c echo.Context) error {
	if e := c.QueryParam("error"); e != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "There was an error connecting your eBay account: " + e,
		})
	}

	st, err := h.seller.Callback(c.Request().Context(), c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, CallbackResponse{Connected: true, Store: st})
}

// RegisterSellerRoutes registers the account endpoints with the Huma API.
func RegisterSellerRoutes(api huma.API, h *SellerHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ebay-connect",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/connect",
		Summary:     "Start connecting an eBay account",
		Tags:        []string{"ebay"},
	}, h.Connect)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-diagnostics",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/diagnostics",
		Summary:     "Diagnose the connected eBay account",
		Description: "Fetches identity, account, policies, and locations in parallel and lists what is still needed to publish.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized},
	}, h.Diagnostics)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-update-defaults",
		Method:      http.MethodPost,
		Path:        "/api/v1/ebay/defaults",
		Summary:     "Update publishing defaults",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest},
	}, h.UpdateDefaults)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-create-location",
		Method:      http.MethodPost,
		Path:        "/api/v1/ebay/locations",
		Summary:     "Create an inventory location",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusBadGateway},
	}, h.CreateLocation)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-business-policies-opt-in",
		Method:      http.MethodPost,
		Path:        "/api/v1/ebay/business-policies/opt-in",
		Summary:     "Opt in to business policies",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusBadGateway},
	}, h.OptIn)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-business-policies-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/business-policies/status",
		Summary:     "Business policies program status",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusBadGateway},
	}, h.Programs)
}

// RegisterCallbackRoute registers the OAuth callback on the echo server.
func RegisterCallbackRoute(e *echo.Echo, h *SellerHandler) {
	e.GET("/api/v1/ebay/callback", h.Callback)
}
