//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("droplist_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))
	// Second run is a no-op.
	require.NoError(t, s.Migrate(ctx))

	return s
}

func createStore(t *testing.T, s *store.PostgresStore, userID string) *domain.Store {
	t.Helper()
	expiry := time.Now().Add(time.Hour).Truncate(time.Microsecond)
	st := &domain.Store{
		UserID:       userID,
		EbayUserID:   "eb-" + userID,
		EbayUsername: "seller-" + userID,
		StoreName:    "Shop",
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenExpiry:  &expiry,
	}
	require.NoError(t, s.CreateStore(context.Background(), st))
	return st
}

func TestPostgresStore_Stores(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	first := createStore(t, s, "user-1")
	second := createStore(t, s, "user-1")

	active, err := s.GetActiveStore(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	old, err := s.GetStore(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.Active)

	require.NoError(t, s.UpdateStoreDefaults(ctx, second.ID, domain.Defaults{
		PaymentPolicyID:     "pay-1",
		MerchantLocationKey: "loc-1",
	}))
	require.NoError(t, s.UpdateStoreDefaults(ctx, second.ID, domain.Defaults{ReturnPolicyID: "ret-1"}))

	got, err := s.GetStore(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "pay-1", got.PaymentPolicyID)
	assert.Equal(t, "ret-1", got.ReturnPolicyID)
	assert.Equal(t, "loc-1", got.MerchantLocationKey)

	n, err := s.ClearTokensByEbayIdentity(ctx, "", "seller-user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = s.GetActiveStore(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_DraftLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	st := createStore(t, s, "user-2")

	d := &domain.Draft{
		StoreID:  st.ID,
		Status:   domain.DraftProcessing,
		Images:   []string{"data:image/jpeg;base64,AAAA", "data:image/jpeg;base64,BBBB"},
		Quantity: 0,
	}
	require.NoError(t, s.CreateDraft(ctx, d))
	assert.Equal(t, 1, d.Quantity)

	d.Status = domain.DraftNeedsReview
	d.Title = "Vintage Lamp"
	d.Specifics = map[string]string{"Brand": "Acme"}
	d.AINotes = []string{"check bulb"}
	require.NoError(t, s.UpdateDraft(ctx, d, []domain.DraftStatus{domain.DraftProcessing}))

	drafts, total, err := s.ListDrafts(ctx, "user-2", &store.DraftQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, drafts, 1)
	assert.Equal(t, 2, drafts[0].ImageCount)
	assert.Nil(t, drafts[0].Images)

	_, err = s.GetDraftForUser(ctx, "someone-else", d.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	ok, err := s.TransitionDraftStatus(ctx, d.ID, domain.PublishableStatuses, domain.DraftPublishing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.TransitionDraftStatus(ctx, d.ID, domain.PublishableStatuses, domain.DraftPublishing)
	require.NoError(t, err)
	assert.False(t, ok)

	d.Status = domain.DraftNeedsReview
	require.ErrorIs(t, s.UpdateDraft(ctx, d, domain.PublishableStatuses), domain.ErrConflictingOperation)

	require.NoError(t, s.SetDraftOfferID(ctx, d.ID, "offer-9"))

	l := &domain.Listing{StoreID: st.ID, EbayOfferID: "offer-9", Title: "Vintage Lamp", Images: d.Images}
	require.NoError(t, s.UpsertListingByOfferID(ctx, l))
	require.NoError(t, s.MarkDraftPublished(ctx, d.ID, l.ID))

	got, err := s.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftPublished, got.Status)
	assert.Equal(t, "offer-9", got.OfferID)
	assert.Equal(t, l.ID, got.PublishedListingID)
	assert.Equal(t, map[string]string{"Brand": "Acme"}, got.Specifics)
	assert.Len(t, got.Images, 2)
}

func TestPostgresStore_ListingUpsertKeepsUnsyncedFields(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	st := createStore(t, s, "user-3")

	listedAt := time.Now().Truncate(time.Microsecond)
	l := &domain.Listing{
		StoreID:       st.ID,
		EbayOfferID:   "offer-1",
		EbayListingID: domain.StringPtr("v1|1|0"),
		Title:         "Lamp",
		CategoryID:    domain.StringPtr("1234"),
		Images:        []string{"img"},
		ListedAt:      &listedAt,
		Quantity:      1,
	}
	require.NoError(t, s.UpsertListingByOfferID(ctx, l))

	synced := &domain.Listing{
		StoreID:     st.ID,
		EbayOfferID: "offer-1",
		Title:       "Lamp (synced)",
		Price:       domain.StringPtr("12.00"),
		Quantity:    3,
		Status:      "published",
	}
	require.NoError(t, s.UpsertListingByOfferID(ctx, synced))
	assert.Equal(t, l.ID, synced.ID)

	got, err := s.GetListingForUser(ctx, "user-3", l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp (synced)", got.Title)
	assert.Equal(t, "v1|1|0", domain.Deref(got.EbayListingID))
	assert.Equal(t, "1234", domain.Deref(got.CategoryID))
	assert.Equal(t, []string{"img"}, got.Images)
	assert.Equal(t, 3, got.Quantity)

	qty := 5
	require.NoError(t, s.UpdateListingPriceQuantity(ctx, l.ID, nil, &qty))
	require.NoError(t, s.UpdateListingStatus(ctx, l.ID, domain.ListingEnded))

	ended := domain.ListingEnded
	listings, total, err := s.ListListings(ctx, "user-3", &store.ListingQuery{Status: &ended})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listings, 1)
	assert.Equal(t, 5, listings[0].Quantity)
	assert.Equal(t, "12.00", domain.Deref(listings[0].Price))

	require.NoError(t, s.MarkListingPublished(ctx, l.ID, "", time.Now()))
	got, err = s.GetListingForUser(ctx, "user-3", l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingActive, got.Status)
	assert.Equal(t, "v1|1|0", domain.Deref(got.EbayListingID))
}
