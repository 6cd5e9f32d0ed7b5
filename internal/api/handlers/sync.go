package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/droplist/internal/offersync"
)

// Syncer mirrors remote offers into the listing store.
type Syncer interface {
	SyncForUser(ctx context.Context, userID, storeID string) (*offersync.Result, error)
}

// SyncHandler handles offer sync requests.
type SyncHandler struct {
	syncer Syncer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(s Syncer) *SyncHandler {
	return &SyncHandler{syncer: s}
}

// SyncInput selects the store to sync.
type SyncInput struct {
	StoreID string `query:"storeId" doc:"Store to sync (default: the active store)"`
}

// SyncOutput summarizes the sync.
type SyncOutput struct {
	Body *offersync.Result
}

// Sync fetches every offer of the store and upserts it locally.
func (h *SyncHandler) Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.syncer.SyncForUser(ctx, userID, input.StoreID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &SyncOutput{Body: res}, nil
}

// RegisterSyncRoutes registers the sync endpoint for GET and POST.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		op := "ebay-sync"
		if method == http.MethodPost {
			op = "ebay-sync-post"
		}
		huma.Register(api, huma.Operation{
			OperationID: op,
			Method:      method,
			Path:        "/api/v1/ebay/sync",
			Summary:     "Sync eBay offers",
			Description: "Pages through the seller's eBay offers and upserts each into the local listings by offer id.",
			Tags:        []string{"ebay"},
			Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusBadGateway},
		}, h.Sync)
	}
}
