package publish_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/droplist/internal/ebay"
	ebayMocks "github.com/donaldgifford/droplist/internal/ebay/mocks"
	"github.com/donaldgifford/droplist/internal/publish"
	sellerMocks "github.com/donaldgifford/droplist/internal/seller/mocks"
	storeMocks "github.com/donaldgifford/droplist/internal/store/mocks"
	"github.com/donaldgifford/droplist/pkg/logger"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *storeMocks.MockStore
	sell     *ebayMocks.MockSellAPI
	tokens   *sellerMocks.MockTokenResolver
	workflow *publish.Workflow
	listings *publish.ListingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  storeMocks.NewMockStore(t),
		sell:   ebayMocks.NewMockSellAPI(t),
		tokens: sellerMocks.NewMockTokenResolver(t),
	}
	opts := []publish.Option{
		publish.WithLogger(logger.Discard()),
		publish.WithPublicBaseURL("https://drop.example.com/"),
		publish.WithNowFunc(func() time.Time { return fixedNow }),
	}
	f.workflow = publish.NewWorkflow(f.store, f.sell, f.tokens, opts...)
	f.listings = publish.NewListingService(f.store, f.sell, f.tokens, opts...)
	return f
}

func connectedStore() *domain.Store {
	return &domain.Store{
		ID:                  "store-1",
		UserID:              "user-1",
		AccessToken:         "tok",
		MarketplaceID:       "EBAY_US",
		PaymentPolicyID:     "pay",
		FulfillmentPolicyID: "ful",
		ReturnPolicyID:      "ret",
		MerchantLocationKey: "home",
	}
}

func readyDraft() *domain.Draft {
	return &domain.Draft{
		ID:         "draft-1",
		StoreID:    "store-1",
		Status:     domain.DraftReadyToPublish,
		Images:     []string{"data:image/jpeg;base64,AAAA", "data:image/jpeg;base64,BBBB"},
		Title:      "  Vintage Pyrex Bowl  ",
		CategoryID: "111",
		Condition:  "",
		Price:      "24.99",
		Quantity:   0,
		SKU:        "SKU-1",
		Specifics:  map[string]string{"Brand": "Pyrex"},
	}
}

// expectGate sets up the loads and the status gate shared by every test
// that gets past validation.
func (f *fixture) expectGate(d *domain.Draft, st *domain.Store) {
	f.store.EXPECT().GetDraftForUser(mock.Anything, "user-1", d.ID).Return(d, nil).Once()
	f.store.EXPECT().GetStore(mock.Anything, d.StoreID).Return(st, nil).Once()
	f.store.EXPECT().
		TransitionDraftStatus(mock.Anything, d.ID, domain.PublishableStatuses, domain.DraftPublishing).
		Return(true, nil).Once()
	f.tokens.EXPECT().Resolve(mock.Anything, st).Return("tok", nil).Once()
}

func (f *fixture) expectRecord(d *domain.Draft, listingID string) {
	f.store.EXPECT().UpsertListingByOfferID(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *domain.Listing) { l.ID = listingID }).
		Return(nil).Once()
	f.store.EXPECT().MarkDraftPublished(mock.Anything, d.ID, listingID).Return(nil).Once()
}

func TestPublishDraft_Success(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	d, st := readyDraft(), connectedStore()
	f.expectGate(d, st)

	f.sell.EXPECT().UpsertInventoryItem(mock.Anything, "tok", "SKU-1",
		mock.MatchedBy(func(in ebay.InventoryItemInput) bool {
			return in.Title == "Vintage Pyrex Bowl" &&
				in.Condition == domain.DefaultCondition &&
				in.Quantity == 1 &&
				assert.ObjectsAreEqual([]string{
					"https://drop.example.com/api/v1/drafts/draft-1/images/0",
					"https://drop.example.com/api/v1/drafts/draft-1/images/1",
				}, in.ImageURLs)
		})).Return(nil).Once()
	f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(in ebay.OfferInput) bool {
		return in.CategoryID == "111" && in.Price == "24.99" && in.Currency == "USD" &&
			in.MerchantLocationKey == "home" && in.Policies.ReturnPolicyID == "ret"
	})).Return("offer-1", nil).Once()
	f.store.EXPECT().SetDraftOfferID(mock.Anything, "draft-1", "offer-1").Return(nil).Once()
	f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("ebay-1", nil).Once()
	f.expectRecord(d, "listing-1")

	res, err := f.workflow.PublishDraft(context.Background(), "user-1", "draft-1")
	require.NoError(t, err)
	assert.Equal(t, &publish.Result{
		ListingID:     "listing-1",
		OfferID:       "offer-1",
		EbayListingID: "ebay-1",
		CategoryID:    "111",
	}, res)
}

func TestPublishDraft_ValidationStopsBeforeGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.Draft, *domain.Store)
		wantErr func(t *testing.T, err error)
	}{
		{
			name:   "missing location",
			mutate: func(_ *domain.Draft, st *domain.Store) { st.MerchantLocationKey = "" },
			wantErr: func(t *testing.T, err error) {
				var locErr *publish.MissingLocationError
				require.ErrorAs(t, err, &locErr)
				assert.Equal(t, "pay", locErr.Defaults.PaymentPolicyID)
			},
		},
		{
			name:   "missing title",
			mutate: func(d *domain.Draft, _ *domain.Store) { d.Title = "   " },
			wantErr: func(t *testing.T, err error) {
				var vErr *publish.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "title", vErr.Field)
			},
		},
		{
			name:   "missing category",
			mutate: func(d *domain.Draft, _ *domain.Store) { d.CategoryID = "" },
			wantErr: func(t *testing.T, err error) {
				var vErr *publish.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "categoryId", vErr.Field)
			},
		},
		{
			name:   "missing price",
			mutate: func(d *domain.Draft, _ *domain.Store) { d.Price = "" },
			wantErr: func(t *testing.T, err error) {
				var vErr *publish.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "price", vErr.Field)
			},
		},
		{
			name:   "not connected",
			mutate: func(_ *domain.Draft, st *domain.Store) { st.AccessToken = "" },
			wantErr: func(t *testing.T, err error) {
				require.ErrorIs(t, err, publish.ErrNotConnected)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			d, st := readyDraft(), connectedStore()
			tt.mutate(d, st)
			f.store.EXPECT().GetDraftForUser(mock.Anything, "user-1", d.ID).Return(d, nil).Once()
			f.store.EXPECT().GetStore(mock.Anything, d.StoreID).Return(st, nil).Once()

			_, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)
			tt.wantErr(t, err)
		})
	}
}

func TestPublishDraft_Conflict(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	d, st := readyDraft(), connectedStore()
	f.store.EXPECT().GetDraftForUser(mock.Anything, "user-1", d.ID).Return(d, nil).Once()
	f.store.EXPECT().GetStore(mock.Anything, d.StoreID).Return(st, nil).Once()
	f.store.EXPECT().
		TransitionDraftStatus(mock.Anything, d.ID, domain.PublishableStatuses, domain.DraftPublishing).
		Return(false, nil).Once()

	_, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)
	require.ErrorIs(t, err, publish.ErrConflictingOperation)
}

func TestPublishDraft_DraftNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetDraftForUser(mock.Anything, "user-1", "nope").
		Return(nil, publish.ErrNotFound).Once()

	_, err := f.workflow.PublishDraft(context.Background(), "user-1", "nope")
	require.ErrorIs(t, err, publish.ErrNotFound)
}

func TestPublishDraft_PolicyDiscovery(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	d, st := readyDraft(), connectedStore()
	st.PaymentPolicyID, st.FulfillmentPolicyID, st.ReturnPolicyID = "", "", ""
	f.expectGate(d, st)

	f.sell.EXPECT().GetPolicies(mock.Anything, "tok", "EBAY_US").Return(&ebay.Policies{
		Payment: []ebay.Policy{{ID: "p1"}, {ID: "p2"}},
		Errors:  map[string]string{"return": "403 Forbidden"},
	}, nil).Once()
	f.store.EXPECT().UpdateStoreDefaults(mock.Anything, "store-1", domain.Defaults{
		MarketplaceID:   "EBAY_US",
		PaymentPolicyID: "p1",
	}).Return(nil).Once()
	f.store.EXPECT().MarkDraftFailed(mock.Anything, "draft-1", mock.Anything).Return(nil).Once()

	_, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)

	var polErr *publish.MissingPoliciesError
	require.ErrorAs(t, err, &polErr)
	assert.Equal(t, []string{"fulfillment", "return"}, polErr.Missing())
	assert.Equal(t, "p1", polErr.Defaults.PaymentPolicyID)
	assert.Equal(t, "403 Forbidden", polErr.LookupErrors["return"])
}

func TestPublishDraft_CategoryRecovery(t *testing.T) {
	t.Parallel()

	invalid := &ebay.APIError{HTTPStatus: 400, Code: ebay.ErrorCodeInvalidCategory, Message: "invalid category"}

	t.Run("retries with suggestion", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		d, st := readyDraft(), connectedStore()
		f.expectGate(d, st)

		f.sell.EXPECT().UpsertInventoryItem(mock.Anything, "tok", "SKU-1", mock.Anything).Return(nil).Once()
		f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(in ebay.OfferInput) bool {
			return in.CategoryID == "111"
		})).Return("offer-1", nil).Once()
		f.store.EXPECT().SetDraftOfferID(mock.Anything, "draft-1", "offer-1").Return(nil).Once()
		f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("", invalid).Once()

		f.sell.EXPECT().CategorySuggestions(mock.Anything, "tok", "EBAY_US", "Vintage Pyrex Bowl").
			Return([]ebay.CategorySuggestion{{CategoryID: "222", CategoryName: "Bowls"}}, nil).Once()
		f.store.EXPECT().SetDraftCategory(mock.Anything, "draft-1", "222").Return(nil).Once()
		f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(in ebay.OfferInput) bool {
			return in.CategoryID == "222"
		})).Return("offer-2", nil).Once()
		f.store.EXPECT().SetDraftOfferID(mock.Anything, "draft-1", "offer-2").Return(nil).Once()
		f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-2").Return("ebay-2", nil).Once()
		f.expectRecord(d, "listing-2")

		res, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)
		require.NoError(t, err)
		assert.Equal(t, "offer-2", res.OfferID)
		assert.Equal(t, "222", res.CategoryID)
	})

	failing := []struct {
		name        string
		suggestions []ebay.CategorySuggestion
		lookupErr   error
		check       func(t *testing.T, err error)
	}{
		{
			name:        "same suggestion",
			suggestions: []ebay.CategorySuggestion{{CategoryID: "111"}},
			check: func(t *testing.T, err error) {
				var catErr *publish.InvalidCategoryError
				require.ErrorAs(t, err, &catErr)
				assert.Len(t, catErr.Suggestions, 1)
			},
		},
		{
			name: "no suggestions",
			check: func(t *testing.T, err error) {
				var catErr *publish.InvalidCategoryError
				require.ErrorAs(t, err, &catErr)
				assert.Equal(t, "111", catErr.CategoryID)
			},
		},
		{
			name:      "lookup fails",
			lookupErr: &ebay.APIError{HTTPStatus: 403, Raw: "insufficient scope"},
			check: func(t *testing.T, err error) {
				var lookupErr *publish.CategoryLookupError
				require.ErrorAs(t, err, &lookupErr)
				assert.Equal(t, ebay.ErrorCodeInvalidCategory, lookupErr.Rejection.Code)
				assert.NotEmpty(t, lookupErr.Hint())
			},
		},
	}

	for _, tt := range failing {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			d, st := readyDraft(), connectedStore()
			f.expectGate(d, st)

			f.sell.EXPECT().UpsertInventoryItem(mock.Anything, "tok", "SKU-1", mock.Anything).Return(nil).Once()
			f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
			f.store.EXPECT().SetDraftOfferID(mock.Anything, "draft-1", "offer-1").Return(nil).Once()
			f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("", invalid).Once()
			f.sell.EXPECT().CategorySuggestions(mock.Anything, "tok", "EBAY_US", mock.Anything).
				Return(tt.suggestions, tt.lookupErr).Once()
			f.store.EXPECT().MarkDraftFailed(mock.Anything, "draft-1", mock.Anything).Return(nil).Once()

			_, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)
			tt.check(t, err)
		})
	}
}

func TestPublishDraft_RejectedMarksFailed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	d, st := readyDraft(), connectedStore()
	f.expectGate(d, st)

	f.sell.EXPECT().UpsertInventoryItem(mock.Anything, "tok", "SKU-1", mock.Anything).Return(nil).Once()
	f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.store.EXPECT().SetDraftOfferID(mock.Anything, "draft-1", "offer-1").Return(nil).Once()
	f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").
		Return("", &ebay.APIError{HTTPStatus: 400, Code: 25002, Message: "bad listing"}).Once()
	f.store.EXPECT().MarkDraftFailed(mock.Anything, "draft-1",
		mock.MatchedBy(func(msg string) bool { return msg != "" })).Return(nil).Once()

	_, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)

	var rejErr *publish.PublishRejectedError
	require.ErrorAs(t, err, &rejErr)
	assert.Equal(t, 25002, rejErr.Code)
	assert.ErrorIs(t, err, publish.ErrRemoteRequestFailed)
}

func TestPublishDraft_RecordFailureKeepsPublish(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	d, st := readyDraft(), connectedStore()
	f.expectGate(d, st)

	f.sell.EXPECT().UpsertInventoryItem(mock.Anything, "tok", "SKU-1", mock.Anything).Return(nil).Once()
	f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.store.EXPECT().SetDraftOfferID(mock.Anything, "draft-1", "offer-1").Return(nil).Once()
	f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("ebay-1", nil).Once()
	f.store.EXPECT().UpsertListingByOfferID(mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).Once()
	f.store.EXPECT().SetDraftStatus(mock.Anything, "draft-1", domain.DraftPublished).Return(nil).Once()

	res, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)
	require.NoError(t, err)
	assert.Empty(t, res.ListingID)
	assert.Equal(t, "ebay-1", res.EbayListingID)
}

func TestPublishDraft_TokenFailureMarksFailed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	d, st := readyDraft(), connectedStore()
	f.store.EXPECT().GetDraftForUser(mock.Anything, "user-1", d.ID).Return(d, nil).Once()
	f.store.EXPECT().GetStore(mock.Anything, d.StoreID).Return(st, nil).Once()
	f.store.EXPECT().
		TransitionDraftStatus(mock.Anything, d.ID, domain.PublishableStatuses, domain.DraftPublishing).
		Return(true, nil).Once()
	f.tokens.EXPECT().Resolve(mock.Anything, st).
		Return("", &ebay.TokenRefreshError{Status: 400, Body: "invalid_grant"}).Once()
	f.store.EXPECT().MarkDraftFailed(mock.Anything, "draft-1", mock.Anything).Return(nil).Once()

	_, err := f.workflow.PublishDraft(context.Background(), "user-1", d.ID)
	require.ErrorIs(t, err, publish.ErrTokenRefreshFailed)
}
