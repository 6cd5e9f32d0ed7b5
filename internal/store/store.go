// Package store defines the datastore abstraction for droplist.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// ErrNotFound is returned when a row does not exist or is not visible to
// the requesting user.
var ErrNotFound = errors.New("not found")

// DraftQuery defines optional filters for draft queries.
type DraftQuery struct {
	Status *domain.DraftStatus
	Limit  int // default 50
	Offset int
}

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Status  *string
	StoreID *string
	Limit   int // default 50
	Offset  int
	OrderBy string // "updated_at", "listed_at", "title"
}

// Store defines all data access operations for droplist.
type Store interface {
	Ping(ctx context.Context) error

	// Stores
	CreateStore(ctx context.Context, s *domain.Store) error
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	GetActiveStore(ctx context.Context, userID string) (*domain.Store, error)
	ListConnectedStores(ctx context.Context) ([]domain.Store, error)
	UpdateStoreTokens(ctx context.Context, storeID, accessToken string, expiry time.Time) error
	UpdateStoreDefaults(ctx context.Context, storeID string, d domain.Defaults) error
	ClearTokensByEbayIdentity(ctx context.Context, ebayUserID, username string) (int64, error)

	// Drafts
	CreateDraft(ctx context.Context, d *domain.Draft) error
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
	GetDraftForUser(ctx context.Context, userID, id string) (*domain.Draft, error)
	ListDrafts(ctx context.Context, userID string, q *DraftQuery) ([]domain.Draft, int, error)
	UpdateDraft(ctx context.Context, d *domain.Draft, from []domain.DraftStatus) error
	SetDraftStatus(ctx context.Context, id string, status domain.DraftStatus) error
	TransitionDraftStatus(
		ctx context.Context,
		id string,
		from []domain.DraftStatus,
		to domain.DraftStatus,
	) (bool, error)
	SetDraftOfferID(ctx context.Context, id, offerID string) error
	SetDraftCategory(ctx context.Context, id, categoryID string) error
	MarkDraftPublished(ctx context.Context, id, listingID string) error
	MarkDraftFailed(ctx context.Context, id, message string) error

	// Listings
	UpsertListingByOfferID(ctx context.Context, l *domain.Listing) error
	GetListingForUser(ctx context.Context, userID, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, userID string, q *ListingQuery) ([]domain.Listing, int, error)
	UpdateListingPriceQuantity(ctx context.Context, id string, price *string, quantity *int) error
	UpdateListingStatus(ctx context.Context, id, status string) error
	MarkListingPublished(ctx context.Context, id, ebayListingID string, listedAt time.Time) error
}
