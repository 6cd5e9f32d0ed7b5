package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/droplist/internal/secrets"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

const (
	testStoreID = "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"
	testDraftID = "11111111-1111-1111-1111-111111111111"
	testListID  = "22222222-2222-2222-2222-222222222222"
)

var storeCols = []string{
	"id", "user_id", "ebay_user_id", "ebay_username", "store_name",
	"access_token", "refresh_token", "token_expiry",
	"marketplace_id", "payment_policy_id", "fulfillment_policy_id",
	"return_policy_id", "merchant_location_key",
	"active", "created_at", "updated_at",
}

var draftCols = []string{
	"id", "store_id", "status", "images", "marketplace_id",
	"title", "description", "category_id", "condition", "price", "quantity", "sku",
	"specifics", "ai_notes", "ai_extracted_text", "ai_raw", "error",
	"offer_id", "published_listing_id", "created_at", "updated_at", "image_count",
}

var listingCols = []string{
	"id", "store_id", "ebay_offer_id", "ebay_listing_id", "sku", "title",
	"description", "price", "quantity", "status", "marketplace_id", "category_id",
	"condition", "images", "listed_at", "created_at", "updated_at",
}

func newMockStore(t *testing.T, opts ...Option) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock, opts...), mock
}

func newBox(t *testing.T) *secrets.Box {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	box, err := secrets.NewBox(base64.StdEncoding.EncodeToString(key))
	require.NoError(t, err)
	return box
}

var namedParam = regexp.MustCompile(`@(\w+)`)

// namedArgs builds the expected pgx.NamedArgs for query: every parameter the
// query names matches anything unless want pins its value.
func namedArgs(query string, want pgx.NamedArgs) pgx.NamedArgs {
	args := pgx.NamedArgs{}
	for _, m := range namedParam.FindAllStringSubmatch(query, -1) {
		args[m[1]] = pgxmock.AnyArg()
	}
	for k, v := range want {
		args[k] = v
	}
	return args
}

// sealedArg matches a *string holding an encrypted value.
type sealedArg struct{}

func (sealedArg) Match(v any) bool {
	s, ok := v.(*string)
	return ok && s != nil && strings.HasPrefix(*s, "enc:v1:")
}

func TestCreateStore_DeactivatesPreviousInTransaction(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stores SET active = false")).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stores")).
		WithArgs(namedArgs(queryCreateStore, pgx.NamedArgs{
			"user_id":        "user-1",
			"store_name":     "Shop",
			"access_token":   domain.StringPtr("tok"),
			"marketplace_id": domain.DefaultMarketplace,
		})).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(testStoreID, now, now))
	mock.ExpectCommit()
	mock.ExpectRollback()

	st := &domain.Store{UserID: "user-1", StoreName: "Shop", AccessToken: "tok"}
	require.NoError(t, s.CreateStore(context.Background(), st))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, testStoreID, st.ID)
	assert.True(t, st.Active)
	assert.Equal(t, domain.DefaultMarketplace, st.MarketplaceID)
}

func TestCreateStore_InsertFailureRollsBack(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE stores SET active = false")).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stores")).
		WithArgs(namedArgs(queryCreateStore, nil)).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := s.CreateStore(context.Background(), &domain.Store{UserID: "user-1", StoreName: "Shop"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting store")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStore(t *testing.T) {
	t.Parallel()

	t.Run("invalid id is not found without a query", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		_, err := s.GetStore(context.Background(), "not-a-uuid")
		require.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM stores WHERE id = $1")).
			WithArgs(testStoreID).
			WillReturnError(pgx.ErrNoRows)

		_, err := s.GetStore(context.Background(), testStoreID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("decrypts tokens", func(t *testing.T) {
		t.Parallel()

		box := newBox(t)
		sealedAccess, err := box.Seal("access-123")
		require.NoError(t, err)
		expiry := time.Now().Add(time.Hour)
		now := time.Now()

		s, mock := newMockStore(t, WithSecrets(box))
		mock.ExpectQuery(regexp.QuoteMeta("FROM stores WHERE id = $1")).
			WithArgs(testStoreID).
			WillReturnRows(pgxmock.NewRows(storeCols).AddRow(
				testStoreID, "user-1", "eb-1", "seller", "Shop",
				sealedAccess, "plain-refresh", &expiry,
				"EBAY_US", "pay", "ful", "ret", "loc",
				true, now, now,
			))

		st, err := s.GetStore(context.Background(), testStoreID)
		require.NoError(t, err)
		assert.Equal(t, "access-123", st.AccessToken)
		assert.Equal(t, "plain-refresh", st.RefreshToken)
		assert.Equal(t, "loc", st.MerchantLocationKey)
		assert.True(t, st.Connected())
	})
}

func TestUpdateStoreTokens_SealsAccessToken(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t, WithSecrets(newBox(t)))
	expiry := time.Now().Add(2 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("access_token = $2")).
		WithArgs(testStoreID, sealedArg{}, expiry).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.UpdateStoreTokens(context.Background(), testStoreID, "fresh", expiry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStoreDefaults_NotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("merchant_location_key = COALESCE")).
		WithArgs(namedArgs(queryUpdateStoreDefaults, pgx.NamedArgs{
			"id":                testStoreID,
			"payment_policy_id": "p",
		})).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateStoreDefaults(context.Background(), testStoreID, domain.Defaults{PaymentPolicyID: "p"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearTokensByEbayIdentity(t *testing.T) {
	t.Parallel()

	t.Run("no identity is a no-op", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		n, err := s.ClearTokensByEbayIdentity(context.Background(), "", "")
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports affected rows", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("refresh_token = NULL")).
			WithArgs("eb-1", "seller").
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))

		n, err := s.ClearTokensByEbayIdentity(context.Background(), "eb-1", "seller")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}

func TestTransitionDraftStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "transition applied", affected: 1, want: true},
		{name: "draft in another state", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStore(t)
			mock.ExpectExec(regexp.QuoteMeta("status = ANY($2)")).
				WithArgs(testDraftID, []string{"needs_review", "failed"}, "publishing").
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := s.TransitionDraftStatus(
				context.Background(),
				testDraftID,
				[]domain.DraftStatus{domain.DraftNeedsReview, domain.DraftFailed},
				domain.DraftPublishing,
			)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetDraftForUser(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = $1 AND s.user_id = $2")).
		WithArgs(testDraftID, "user-1").
		WillReturnRows(pgxmock.NewRows(draftCols).AddRow(
			testDraftID, testStoreID, "needs_review", []string{"data:image/jpeg;base64,AAA"}, "EBAY_US",
			"Lamp", "Desc", "1234", "USED_GOOD", "45.00", 1, "drop-1",
			[]byte(`{"Brand":"Acme"}`), []string{"check wiring"}, "", []byte(`{"x":1}`), "",
			"", "", now, now, 1,
		))

	d, err := s.GetDraftForUser(context.Background(), "user-1", testDraftID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftNeedsReview, d.Status)
	assert.Equal(t, map[string]string{"Brand": "Acme"}, d.Specifics)
	assert.Equal(t, 1, d.ImageCount)
	assert.JSONEq(t, `{"x":1}`, string(d.AIRaw))
}

func TestListDrafts_OmitsImages(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY d.created_at DESC")).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(draftCols).AddRow(
			testDraftID, testStoreID, "processing", []string{}, "EBAY_US",
			"", "", "", "", "", 1, "",
			[]byte(`{}`), []string{}, "", nil, "",
			"", "", now, now, 3,
		))

	drafts, total, err := s.ListDrafts(context.Background(), "user-1", &DraftQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, drafts, 1)
	assert.Nil(t, drafts[0].Images)
	assert.Equal(t, 3, drafts[0].ImageCount)
}

func TestUpdateDraft_GuardedByStatus(t *testing.T) {
	t.Parallel()

	t.Run("idle draft written", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = @id AND status = ANY(@from)")).
			WithArgs(namedArgs(queryUpdateDraft, pgx.NamedArgs{
				"id":       testDraftID,
				"status":   "ready_to_publish",
				"quantity": 0,
				"from":     []string{"needs_review", "ready_to_publish", "failed"},
			})).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

		d := &domain.Draft{ID: testDraftID, Status: domain.DraftReadyToPublish, Quantity: 0}
		require.NoError(t, s.UpdateDraft(context.Background(), d, domain.PublishableStatuses))
		assert.Equal(t, now, d.UpdatedAt)
		assert.Equal(t, 1, d.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("draft moved on since read", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = @id AND status = ANY(@from)")).
			WithArgs(namedArgs(queryUpdateDraft, pgx.NamedArgs{"id": testDraftID})).
			WillReturnError(pgx.ErrNoRows)

		d := &domain.Draft{ID: testDraftID, Status: domain.DraftNeedsReview}
		err := s.UpdateDraft(context.Background(), d, domain.PublishableStatuses)
		require.ErrorIs(t, err, domain.ErrConflictingOperation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkDraftFailed_NotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("status = 'failed'")).
		WithArgs(testDraftID, "boom").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, s.MarkDraftFailed(context.Background(), testDraftID, "boom"), ErrNotFound)
}

func TestUpsertListingByOfferID(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	now := time.Now()
	later := now.Add(time.Minute)

	// Both writes hit the same ebay_offer_id conflict target, so Postgres
	// returns the same row and the second call's fields win.
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (ebay_offer_id)")).
		WithArgs(namedArgs(queryUpsertListingByOfferID, pgx.NamedArgs{
			"ebay_offer_id": "offer-1",
			"title":         "Lamp",
			"price":         domain.StringPtr("45.00"),
			"quantity":      1,
			"status":        "active",
		})).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(testListID, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (ebay_offer_id)")).
		WithArgs(namedArgs(queryUpsertListingByOfferID, pgx.NamedArgs{
			"ebay_offer_id": "offer-1",
			"title":         "Brass Lamp",
			"price":         (*string)(nil),
			"quantity":      3,
			"status":        "ended",
		})).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(testListID, now, later))

	first := &domain.Listing{StoreID: testStoreID, EbayOfferID: "offer-1", Title: "Lamp", Price: domain.StringPtr("45.00")}
	require.NoError(t, s.UpsertListingByOfferID(context.Background(), first))
	assert.Equal(t, testListID, first.ID)
	assert.Equal(t, domain.ListingActive, first.Status)

	second := &domain.Listing{
		StoreID:     testStoreID,
		EbayOfferID: "offer-1",
		Title:       "Brass Lamp",
		Quantity:    3,
		Status:      domain.ListingEnded,
	}
	require.NoError(t, s.UpsertListingByOfferID(context.Background(), second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, later, second.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetListingForUser(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	now := time.Now()
	listingID := "v1|123|0"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE l.id = $1 AND s.user_id = $2")).
		WithArgs(testListID, "user-1").
		WillReturnRows(pgxmock.NewRows(listingCols).AddRow(
			testListID, testStoreID, "offer-1", &listingID, nil, "Lamp",
			nil, nil, 2, "active", nil, nil,
			nil, nil, nil, now, now,
		))

	l, err := s.GetListingForUser(context.Background(), "user-1", testListID)
	require.NoError(t, err)
	assert.Equal(t, "offer-1", l.EbayOfferID)
	assert.Equal(t, "v1|123|0", domain.Deref(l.EbayListingID))
	assert.Equal(t, []string{}, l.Images)
}

func TestUpdateListingPriceQuantity(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	price := "19.99"

	mock.ExpectExec(regexp.QuoteMeta("price = COALESCE($2, price)")).
		WithArgs(testListID, &price, (*int)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.UpdateListingPriceQuantity(context.Background(), testListID, &price, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("001_initial.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
