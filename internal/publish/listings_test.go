package publish_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/publish"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

func TestNormalizePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12.5", want: "12.50"},
		{in: " 7 ", want: "7.00"},
		{in: "19.999", want: "20.00"},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := publish.NormalizePrice(tt.in)
			if tt.wantErr {
				var vErr *publish.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "price", vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateManual(t *testing.T) {
	t.Parallel()

	t.Run("publishes with store defaults", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		st := connectedStore()
		f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").Return(st, nil).Once()
		f.tokens.EXPECT().Resolve(mock.Anything, st).Return("tok", nil).Once()
		f.store.EXPECT().UpdateStoreDefaults(mock.Anything, "store-1", domain.Defaults{
			MarketplaceID:       "EBAY_US",
			MerchantLocationKey: "warehouse",
			PaymentPolicyID:     "pay",
			FulfillmentPolicyID: "ful",
			ReturnPolicyID:      "ret",
		}).Return(nil).Once()
		f.sell.EXPECT().UpsertInventoryItem(mock.Anything, "tok", "MAN-1",
			mock.MatchedBy(func(in ebay.InventoryItemInput) bool {
				return in.Quantity == 1 && assert.ObjectsAreEqual([]string{"https://img/1.jpg"}, in.ImageURLs)
			})).Return(nil).Once()
		f.sell.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(in ebay.OfferInput) bool {
			return in.Price == "10.00" && in.Currency == "USD" && in.MerchantLocationKey == "warehouse"
		})).Return("offer-9", nil).Once()
		f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-9").Return("ebay-9", nil).Once()
		f.store.EXPECT().UpsertListingByOfferID(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
			return l.EbayOfferID == "offer-9" && l.Status == domain.ListingActive && l.ListedAt != nil
		})).Run(func(_ context.Context, l *domain.Listing) { l.ID = "listing-9" }).Return(nil).Once()

		res, err := f.listings.CreateManual(context.Background(), "user-1", publish.ManualListingInput{
			Title:               "Cast iron pan",
			SKU:                 "MAN-1",
			CategoryID:          "20625",
			Price:               "10",
			MerchantLocationKey: "warehouse",
			ImageURLs:           []string{" https://img/1.jpg ", "  "},
		})
		require.NoError(t, err)
		assert.Equal(t, "listing-9", res.ListingID)
		assert.Equal(t, "ebay-9", res.EbayListingID)
	})

	t.Run("requires sku", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").Return(connectedStore(), nil).Once()

		_, err := f.listings.CreateManual(context.Background(), "user-1", publish.ManualListingInput{
			Title:      "Cast iron pan",
			CategoryID: "20625",
			Price:      "10",
		})
		var vErr *publish.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "sku", vErr.Field)
	})

	t.Run("missing policies", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		st := connectedStore()
		st.ReturnPolicyID = ""
		f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").Return(st, nil).Once()

		_, err := f.listings.CreateManual(context.Background(), "user-1", publish.ManualListingInput{
			Title:      "Cast iron pan",
			SKU:        "MAN-1",
			CategoryID: "20625",
			Price:      "10",
		})
		var polErr *publish.MissingPoliciesError
		require.ErrorAs(t, err, &polErr)
		assert.Equal(t, []string{"return"}, polErr.Missing())
	})

	t.Run("no store", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").Return(nil, publish.ErrNotFound).Once()

		_, err := f.listings.CreateManual(context.Background(), "user-1", publish.ManualListingInput{})
		require.ErrorIs(t, err, publish.ErrNoStore)
	})
}

func liveListing() *domain.Listing {
	return &domain.Listing{
		ID:          "listing-1",
		StoreID:     "store-1",
		EbayOfferID: "offer-1",
		Title:       "Vintage Pyrex Bowl",
		Quantity:    2,
		Status:      domain.ListingActive,
	}
}

func (f *fixture) expectAction(l *domain.Listing) {
	f.store.EXPECT().GetListingForUser(mock.Anything, "user-1", l.ID).Return(l, nil).Once()
	f.store.EXPECT().GetStore(mock.Anything, l.StoreID).Return(connectedStore(), nil).Once()
}

func TestUpdatePriceQuantity(t *testing.T) {
	t.Parallel()

	t.Run("price only", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		l := liveListing()
		f.expectAction(l)
		f.tokens.EXPECT().Resolve(mock.Anything, mock.Anything).Return("tok", nil).Once()
		f.sell.EXPECT().UpdateOfferPriceQuantity(mock.Anything, "tok", "offer-1",
			mock.MatchedBy(func(pq ebay.PriceQuantity) bool {
				return pq.Price != nil && *pq.Price == "12.50" && pq.Quantity == nil && pq.Currency == "USD"
			})).Return(nil).Once()
		f.store.EXPECT().UpdateListingPriceQuantity(mock.Anything, "listing-1",
			mock.MatchedBy(func(p *string) bool { return p != nil && *p == "12.50" }),
			(*int)(nil)).Return(nil).Once()
		f.store.EXPECT().GetListingForUser(mock.Anything, "user-1", "listing-1").Return(l, nil).Once()

		price := "12.5"
		got, err := f.listings.UpdatePriceQuantity(context.Background(), "user-1", "listing-1",
			publish.PriceQuantityInput{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, "listing-1", got.ID)
	})

	t.Run("nothing to update", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.expectAction(liveListing())

		_, err := f.listings.UpdatePriceQuantity(context.Background(), "user-1", "listing-1",
			publish.PriceQuantityInput{})
		var vErr *publish.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Provide price and/or quantity", vErr.Error())
	})

	t.Run("bad quantity", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.expectAction(liveListing())

		qty := 0
		_, err := f.listings.UpdatePriceQuantity(context.Background(), "user-1", "listing-1",
			publish.PriceQuantityInput{Quantity: &qty})
		var vErr *publish.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "quantity", vErr.Field)
	})

	t.Run("listing without offer", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		l := liveListing()
		l.EbayOfferID = ""
		f.store.EXPECT().GetListingForUser(mock.Anything, "user-1", l.ID).Return(l, nil).Once()

		qty := 3
		_, err := f.listings.UpdatePriceQuantity(context.Background(), "user-1", "listing-1",
			publish.PriceQuantityInput{Quantity: &qty})
		require.ErrorIs(t, err, publish.ErrNoOffer)
	})
}

func TestEndAndRepublish(t *testing.T) {
	t.Parallel()

	t.Run("end", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		l := liveListing()
		f.expectAction(l)
		f.tokens.EXPECT().Resolve(mock.Anything, mock.Anything).Return("tok", nil).Once()
		f.sell.EXPECT().WithdrawOffer(mock.Anything, "tok", "offer-1").Return("ebay-1", nil).Once()
		f.store.EXPECT().UpdateListingStatus(mock.Anything, "listing-1", domain.ListingEnded).Return(nil).Once()
		f.store.EXPECT().GetListingForUser(mock.Anything, "user-1", "listing-1").
			Return(&domain.Listing{ID: "listing-1", Status: domain.ListingEnded}, nil).Once()

		got, err := f.listings.End(context.Background(), "user-1", "listing-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ListingEnded, got.Status)
	})

	t.Run("republish", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		l := liveListing()
		f.expectAction(l)
		f.tokens.EXPECT().Resolve(mock.Anything, mock.Anything).Return("tok", nil).Once()
		f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("ebay-7", nil).Once()
		f.store.EXPECT().MarkListingPublished(mock.Anything, "listing-1", "ebay-7", fixedNow).Return(nil).Once()
		f.store.EXPECT().GetListingForUser(mock.Anything, "user-1", "listing-1").Return(l, nil).Once()

		_, err := f.listings.Republish(context.Background(), "user-1", "listing-1")
		require.NoError(t, err)
	})

	t.Run("republish rejected", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		l := liveListing()
		f.expectAction(l)
		f.tokens.EXPECT().Resolve(mock.Anything, mock.Anything).Return("tok", nil).Once()
		f.sell.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").
			Return("", &ebay.APIError{HTTPStatus: 400, Code: 25002, Message: "Offer already published"}).Once()

		_, err := f.listings.Republish(context.Background(), "user-1", "listing-1")
		var rej *publish.PublishRejectedError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, 25002, rej.Code)
		assert.Equal(t, "Offer already published", rej.Message)
	})

	t.Run("store disconnected", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		l := liveListing()
		f.store.EXPECT().GetListingForUser(mock.Anything, "user-1", l.ID).Return(l, nil).Once()
		f.store.EXPECT().GetStore(mock.Anything, "store-1").
			Return(&domain.Store{ID: "store-1"}, nil).Once()

		_, err := f.listings.End(context.Background(), "user-1", "listing-1")
		require.ErrorIs(t, err, publish.ErrNotConnected)
	})
}
