package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/droplist/internal/drafts"
	"github.com/donaldgifford/droplist/internal/publish"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// maxDraftBodyBytes admits a full set of maximum-size photos.
const maxDraftBodyBytes = int64(drafts.MaxImageChars*domain.MaxImages) + 64<<10

// DraftService is the draft lifecycle used by the handlers.
type DraftService interface {
	Create(ctx context.Context, userID string, images []string) (*domain.Draft, error)
	Regenerate(ctx context.Context, userID, id string) (*domain.Draft, error)
	Update(ctx context.Context, userID, id string, p drafts.Patch) (*domain.Draft, error)
	Get(ctx context.Context, userID, id string) (*domain.Draft, error)
	List(ctx context.Context, userID string, q *store.DraftQuery) ([]domain.Draft, int, error)
	Image(ctx context.Context, id string, index int) (string, []byte, error)
}

// DraftPublisher publishes a reviewed draft to eBay.
type DraftPublisher interface {
	PublishDraft(ctx context.Context, userID, draftID string) (*publish.Result, error)
}

// DraftsHandler handles draft endpoints.
type DraftsHandler struct {
	drafts    DraftService
	publisher DraftPublisher
}

// NewDraftsHandler creates a new DraftsHandler.
func NewDraftsHandler(d DraftService, p DraftPublisher) *DraftsHandler {
	return &DraftsHandler{drafts: d, publisher: p}
}

// --- Input/Output types ---

// CreateDraftInput carries the photos to analyze.
type CreateDraftInput struct {
	Body struct {
		Images []string `json:"images" doc:"Photos as data:image/...;base64 URLs"`
	}
}

// DraftOutput is a single draft response.
type DraftOutput struct {
	Body *domain.Draft
}

// DraftIDInput addresses one draft.
type DraftIDInput struct {
	ID string `path:"id" doc:"Draft UUID"`
}

// ListDraftsInput filters the caller's drafts.
type ListDraftsInput struct {
	Status string `query:"status" doc:"Filter by status" enum:"processing,needs_review,ready_to_publish,publishing,published,failed,"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListDraftsOutput is a page of drafts.
type ListDraftsOutput struct {
	Body struct {
		Drafts []domain.Draft `json:"drafts"`
		Total  int            `json:"total"`
		Limit  int            `json:"limit"`
		Offset int            `json:"offset"`
	}
}

// UpdateDraftInput is a partial draft edit. Omitted fields are unchanged.
type UpdateDraftInput struct {
	ID   string `path:"id" doc:"Draft UUID"`
	Body struct {
		Title       *string           `json:"title,omitempty"`
		Description *string           `json:"description,omitempty"`
		CategoryID  *string           `json:"categoryId,omitempty"`
		Condition   *string           `json:"condition,omitempty"`
		Price       *string           `json:"price,omitempty"       example:"24.99"`
		Quantity    *int              `json:"quantity,omitempty"`
		Status      *string           `json:"status,omitempty"      doc:"needs_review or ready_to_publish"`
		Specifics   map[string]string `json:"specifics,omitempty"`
	}
}

// PublishDraftOutput reports the published listing.
type PublishDraftOutput struct {
	Body *publish.Result
}

// --- Handlers ---

// Create analyzes the uploaded photos into a new draft.
func (h *DraftsHandler) Create(ctx context.Context, input *CreateDraftInput) (*DraftOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	d, err := h.drafts.Create(ctx, userID, input.Body.Images)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &DraftOutput{Body: d}, nil
}

// List returns the caller's drafts.
func (h *DraftsHandler) List(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	q := &store.DraftQuery{Limit: input.Limit, Offset: input.Offset}
	if input.Status != "" {
		status := domain.DraftStatus(input.Status)
		q.Status = &status
	}

	list, total, err := h.drafts.List(ctx, userID, q)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	if list == nil {
		list = []domain.Draft{}
	}

	resp := &ListDraftsOutput{}
	resp.Body.Drafts = list
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Get returns one of the caller's drafts.
func (h *DraftsHandler) Get(ctx context.Context, input *DraftIDInput) (*DraftOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	d, err := h.drafts.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &DraftOutput{Body: d}, nil
}

// Regenerate re-runs analysis on the stored photos.
func (h *DraftsHandler) Regenerate(ctx context.Context, input *DraftIDInput) (*DraftOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	d, err := h.drafts.Regenerate(ctx, userID, input.ID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &DraftOutput{Body: d}, nil
}

// Update edits draft fields.
func (h *DraftsHandler) Update(ctx context.Context, input *UpdateDraftInput) (*DraftOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	b := input.Body
	p := drafts.Patch{
		Title:       b.Title,
		Description: b.Description,
		CategoryID:  b.CategoryID,
		Condition:   b.Condition,
		Price:       b.Price,
		Quantity:    b.Quantity,
		Specifics:   b.Specifics,
	}
	if b.Status != nil {
		status := domain.DraftStatus(*b.Status)
		p.Status = &status
	}

	d, err := h.drafts.Update(ctx, userID, input.ID, p)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &DraftOutput{Body: d}, nil
}

// Publish runs the publication workflow for a draft.
func (h *DraftsHandler) Publish(ctx context.Context, input *DraftIDInput) (*PublishDraftOutput, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.publisher.PublishDraft(ctx, userID, input.ID)
	if err != nil {
		return nil, ToHTTPError(err)
	}
	return &PublishDraftOutput{Body: res}, nil
}

// Image serves one draft photo. eBay fetches these while publishing, so the
// route is unauthenticated.
func (h *DraftsHandler) Image(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}

	contentType, data, err := h.drafts.Image(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, contentType, data)
}

// RegisterDraftRoutes registers the draft endpoints with the Huma API.
func RegisterDraftRoutes(api huma.API, h *DraftsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-draft",
		Method:        http.MethodPost,
		Path:          "/api/v1/drafts",
		Summary:       "Create a draft from photos",
		Description:   "Analyzes 1 to 8 photos and stores the suggested listing as a draft awaiting review.",
		Tags:          []string{"drafts"},
		MaxBodyBytes:  maxDraftBodyBytes,
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-drafts",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts",
		Summary:     "List drafts",
		Tags:        []string{"drafts"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-draft",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts/{id}",
		Summary:     "Get a draft",
		Tags:        []string{"drafts"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "regenerate-draft",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/regenerate",
		Summary:     "Regenerate a draft",
		Description: "Re-runs photo analysis. The SKU is kept.",
		Tags:        []string{"drafts"},
		Errors:      []int{http.StatusNotFound},
	}, h.Regenerate)

	huma.Register(api, huma.Operation{
		OperationID: "update-draft",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/update",
		Summary:     "Update draft fields",
		Tags:        []string{"drafts"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID: "publish-draft",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/publish",
		Summary:     "Publish a draft to eBay",
		Description: "Creates the inventory item and offer, publishes it, and records the listing.",
		Tags:        []string{"drafts"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
		},
	}, h.Publish)
}

// RegisterDraftImageRoute registers the photo route on the echo server.
func RegisterDraftImageRoute(e *echo.Echo, h *DraftsHandler) {
	e.GET("/api/v1/drafts/:id/images/:index", h.Image)
}
