package seller_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/donaldgifford/droplist/internal/ebay"
	ebayMocks "github.com/donaldgifford/droplist/internal/ebay/mocks"
	"github.com/donaldgifford/droplist/internal/oauthstate"
	"github.com/donaldgifford/droplist/internal/seller"
	sellerMocks "github.com/donaldgifford/droplist/internal/seller/mocks"
	"github.com/donaldgifford/droplist/internal/store"
	storeMocks "github.com/donaldgifford/droplist/internal/store/mocks"
	"github.com/donaldgifford/droplist/pkg/logger"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

type fixture struct {
	store  *storeMocks.MockStore
	sell   *ebayMocks.MockSellAPI
	tm     *sellerMocks.MockTokenManager
	tokens *sellerMocks.MockTokenResolver
	states *oauthstate.MemoryStore
	svc    *seller.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  storeMocks.NewMockStore(t),
		sell:   ebayMocks.NewMockSellAPI(t),
		tm:     sellerMocks.NewMockTokenManager(t),
		tokens: sellerMocks.NewMockTokenResolver(t),
		states: oauthstate.NewMemoryStore(),
	}
	f.svc = seller.NewService(f.store, f.sell, f.tm, f.tokens, f.states, logger.Discard())
	return f
}

func (f *fixture) expectConnected(st *domain.Store) {
	f.store.EXPECT().GetActiveStore(mock.Anything, st.UserID).Return(st, nil).Once()
	f.tokens.EXPECT().Resolve(mock.Anything, st).Return("tok", nil).Once()
}

func TestActiveStore(t *testing.T) {
	t.Parallel()

	t.Run("no store", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").Return(nil, store.ErrNotFound).Once()

		_, err := f.svc.ActiveStore(context.Background(), "user-1")
		require.ErrorIs(t, err, seller.ErrNoStore)
	})

	t.Run("store without token", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").
			Return(&domain.Store{ID: "s", UserID: "user-1"}, nil).Once()

		_, err := f.svc.ActiveStore(context.Background(), "user-1")
		require.ErrorIs(t, err, seller.ErrNotConnected)
	})
}

func TestConnectAndCallback(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	expiry := time.Now().Add(2 * time.Hour)

	f.tm.EXPECT().AuthCodeURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string { return "https://auth.example/authorize?state=" + state }).Once()

	u, err := f.svc.ConnectURL(ctx, "user-1")
	require.NoError(t, err)
	state := u[len("https://auth.example/authorize?state="):]

	f.tm.EXPECT().Exchange(mock.Anything, "the-code").Return(&oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       expiry,
	}, nil).Once()
	f.sell.EXPECT().GetIdentity(mock.Anything, "access").Return(nil, errors.New("forbidden")).Once()
	f.sell.EXPECT().GetAccount(mock.Anything, "access").
		Return(&ebay.Account{Username: "acct-user", AccountID: "A1"}, nil).Once()
	f.store.EXPECT().CreateStore(mock.Anything, mock.MatchedBy(func(st *domain.Store) bool {
		return st.UserID == "user-1" &&
			st.StoreName == "acct-user" &&
			st.EbayUsername == "acct-user" &&
			st.AccessToken == "access" &&
			st.RefreshToken == "refresh" &&
			st.TokenExpiry != nil && st.TokenExpiry.Equal(expiry)
	})).Return(nil).Once()

	st, err := f.svc.Callback(ctx, "the-code", state)
	require.NoError(t, err)
	assert.Equal(t, "acct-user", st.StoreName)

	// The state is single use.
	_, err = f.svc.Callback(ctx, "the-code", state)
	require.ErrorIs(t, err, oauthstate.ErrInvalidState)
}

func TestCallback_StoreNameFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity *ebay.Identity
		account  *ebay.Account
		want     string
	}{
		{name: "identity username", identity: &ebay.Identity{UserID: "U", Username: "seller"}, account: &ebay.Account{Username: "other"}, want: "seller"},
		{name: "account id", account: &ebay.Account{AccountID: "A1"}, want: "A1"},
		{name: "nothing known", want: "eBay Store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			ctx := context.Background()
			state, err := f.states.Issue(ctx, "user-1")
			require.NoError(t, err)

			var identityErr, accountErr error
			if tt.identity == nil {
				identityErr = errors.New("nope")
			}
			if tt.account == nil {
				accountErr = errors.New("nope")
			}

			f.tm.EXPECT().Exchange(mock.Anything, "code").Return(&oauth2.Token{AccessToken: "a"}, nil).Once()
			f.sell.EXPECT().GetIdentity(mock.Anything, "a").Return(tt.identity, identityErr).Once()
			f.sell.EXPECT().GetAccount(mock.Anything, "a").Return(tt.account, accountErr).Once()
			f.store.EXPECT().CreateStore(mock.Anything, mock.Anything).Return(nil).Once()

			st, err := f.svc.Callback(ctx, "code", state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.StoreName)
			assert.Nil(t, st.TokenExpiry)
		})
	}
}

func TestCallback_MissingCode(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.Callback(context.Background(), "", "state")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "code", ve.Field)
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	st := &domain.Store{
		ID:              "store-1",
		UserID:          "user-1",
		StoreName:       "Shop",
		AccessToken:     "tok",
		PaymentPolicyID: "pay",
	}
	f.expectConnected(st)

	f.sell.EXPECT().GetIdentity(mock.Anything, "tok").Return(&ebay.Identity{Username: "seller"}, nil).Once()
	f.sell.EXPECT().GetAccount(mock.Anything, "tok").Return(nil, errors.New("account down")).Once()
	f.sell.EXPECT().GetPolicies(mock.Anything, "tok", "EBAY_US").
		Return(&ebay.Policies{Payment: []ebay.Policy{{ID: "pay"}}}, nil).Once()
	f.sell.EXPECT().GetInventoryLocations(mock.Anything, "tok").
		Return([]ebay.InventoryLocation{{MerchantLocationKey: "loc"}}, nil).Once()

	d, err := f.svc.Diagnostics(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, d.OK)
	assert.Equal(t, "EBAY_US", d.MarketplaceID)
	assert.Equal(t, "Shop", d.ConnectedAs)
	assert.Equal(t, "seller", d.Identity.Username)
	assert.Equal(t, map[string]string{"account": "account down"}, d.Errors)
	assert.Len(t, d.Locations, 1)
	assert.True(t, d.NextRequirements.NeedsMerchantLocationKey)
	assert.False(t, d.NextRequirements.NeedsPaymentPolicyID)
}

func TestPrograms(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	st := &domain.Store{ID: "store-1", UserID: "user-1", AccessToken: "tok"}
	f.expectConnected(st)
	f.sell.EXPECT().GetOptedInPrograms(mock.Anything, "tok").
		Return([]ebay.Program{{ProgramType: ebay.ProgramSellingPolicyManagement}}, nil).Once()

	status, err := f.svc.Programs(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, status.HasBusinessPolicies)
}

func TestOptInBusinessPolicies(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	st := &domain.Store{ID: "store-1", UserID: "user-1", AccessToken: "tok"}
	f.expectConnected(st)
	f.sell.EXPECT().OptInToProgram(mock.Anything, "tok", ebay.ProgramSellingPolicyManagement).Return(nil).Once()

	require.NoError(t, f.svc.OptInBusinessPolicies(context.Background(), "user-1"))
}

func TestCreateLocation(t *testing.T) {
	t.Parallel()

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		_, err := f.svc.CreateLocation(context.Background(), "user-1", seller.LocationRequest{
			MerchantLocationKey: "home",
			Country:             "US",
			PostalCode:          "  ",
			Phone:               "555",
		})

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "postalCode", ve.Field)
	})

	t.Run("creates and saves default", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		st := &domain.Store{ID: "store-1", UserID: "user-1", AccessToken: "tok"}
		f.expectConnected(st)
		f.sell.EXPECT().CreateInventoryLocation(mock.Anything, "tok", "home", ebay.LocationInput{
			Country:    "US",
			PostalCode: "94105",
			Phone:      "555",
		}).Return(nil).Once()
		f.store.EXPECT().UpdateStoreDefaults(mock.Anything, "store-1", domain.Defaults{MerchantLocationKey: "home"}).
			Return(nil).Once()

		key, err := f.svc.CreateLocation(context.Background(), "user-1", seller.LocationRequest{
			MerchantLocationKey: " home ",
			Country:             "US",
			PostalCode:          "94105",
			Phone:               "555",
		})
		require.NoError(t, err)
		assert.Equal(t, "home", key)
	})
}

func TestUpdateDefaults(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	st := &domain.Store{ID: "store-1", UserID: "user-1"}
	updated := &domain.Store{ID: "store-1", UserID: "user-1", ReturnPolicyID: "ret"}

	f.store.EXPECT().GetActiveStore(mock.Anything, "user-1").Return(st, nil).Once()
	f.store.EXPECT().UpdateStoreDefaults(mock.Anything, "store-1", domain.Defaults{ReturnPolicyID: "ret"}).
		Return(nil).Once()
	f.store.EXPECT().GetStore(mock.Anything, "store-1").Return(updated, nil).Once()

	got, err := f.svc.UpdateDefaults(context.Background(), "user-1", domain.Defaults{
		ReturnPolicyID:      " ret ",
		MerchantLocationKey: "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "ret", got.ReturnPolicyID)
}
