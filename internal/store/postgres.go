package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/droplist/internal/secrets"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

const defaultPoolSize = 10

// DB is the subset of pgxpool.Pool the store uses. pgxmock pools satisfy it
// as well, which is how the unit tests drive PostgresStore.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db       DB
	box      *secrets.Box
	maxConns int32
}

// Option configures a PostgresStore.
type Option func(*PostgresStore)

// WithSecrets encrypts store tokens at rest with box. A nil box stores
// tokens as given.
func WithSecrets(box *secrets.Box) Option {
	return func(s *PostgresStore) {
		s.box = box
	}
}

// WithPoolSize caps the connection pool. Values below 1 keep the default.
func WithPoolSize(n int) Option {
	return func(s *PostgresStore) {
		if n > 0 {
			s.maxConns = int32(min(n, 1<<16)) //nolint:gosec // bounded above
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	s := New(nil, opts...)
	cfg.MaxConns = defaultPoolSize
	if s.maxConns > 0 {
		cfg.MaxConns = s.maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s.db = pool
	return s, nil
}

// New wraps an existing connection.
func New(db DB, opts ...Option) *PostgresStore {
	s := &PostgresStore{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db)
}

// --- Stores ---

// CreateStore inserts s as the user's active store, deactivating any store
// the user had connected before.
func (s *PostgresStore) CreateStore(ctx context.Context, st *domain.Store) error {
	access, err := s.box.Seal(st.AccessToken)
	if err != nil {
		return fmt.Errorf("sealing access token: %w", err)
	}
	refresh, err := s.box.Seal(st.RefreshToken)
	if err != nil {
		return fmt.Errorf("sealing refresh token: %w", err)
	}

	marketplace := st.MarketplaceID
	if marketplace == "" {
		marketplace = domain.DefaultMarketplace
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, queryDeactivateUserStores, st.UserID); err != nil {
		return fmt.Errorf("deactivating previous stores: %w", err)
	}

	args := pgx.NamedArgs{
		"user_id":               st.UserID,
		"ebay_user_id":          st.EbayUserID,
		"ebay_username":         st.EbayUsername,
		"store_name":            st.StoreName,
		"access_token":          domain.StringPtr(access),
		"refresh_token":         domain.StringPtr(refresh),
		"token_expiry":          st.TokenExpiry,
		"marketplace_id":        marketplace,
		"payment_policy_id":     st.PaymentPolicyID,
		"fulfillment_policy_id": st.FulfillmentPolicyID,
		"return_policy_id":      st.ReturnPolicyID,
		"merchant_location_key": st.MerchantLocationKey,
	}
	if err := tx.QueryRow(ctx, queryCreateStore, args).Scan(
		&st.ID, &st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting store: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing store: %w", err)
	}

	st.MarketplaceID = marketplace
	st.Active = true
	return nil
}

// GetStore retrieves a store by its ID.
func (s *PostgresStore) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return s.getStore(ctx, queryGetStore, id)
}

// GetActiveStore returns the user's active store.
func (s *PostgresStore) GetActiveStore(ctx context.Context, userID string) (*domain.Store, error) {
	return s.getStore(ctx, queryGetActiveStore, userID)
}

func (s *PostgresStore) getStore(ctx context.Context, query string, arg any) (*domain.Store, error) {
	st := &domain.Store{}
	if err := s.scanStore(s.db.QueryRow(ctx, query, arg), st); err != nil {
		return nil, notFound(err)
	}
	return st, nil
}

// ListConnectedStores returns every active store holding a token.
func (s *PostgresStore) ListConnectedStores(ctx context.Context) ([]domain.Store, error) {
	rows, err := s.db.Query(ctx, queryListConnectedStores)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var st domain.Store
		if err := s.scanStore(rows, &st); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stores: %w", err)
	}
	return stores, nil
}

// UpdateStoreTokens persists a refreshed access token.
func (s *PostgresStore) UpdateStoreTokens(
	ctx context.Context,
	storeID, accessToken string,
	expiry time.Time,
) error {
	sealed, err := s.box.Seal(accessToken)
	if err != nil {
		return fmt.Errorf("sealing access token: %w", err)
	}
	if _, err := s.db.Exec(ctx, queryUpdateStoreTokens, storeID, domain.StringPtr(sealed), expiry); err != nil {
		return fmt.Errorf("updating store tokens: %w", err)
	}
	return nil
}

// UpdateStoreDefaults writes the non-empty fields of d.
func (s *PostgresStore) UpdateStoreDefaults(ctx context.Context, storeID string, d domain.Defaults) error {
	args := pgx.NamedArgs{
		"id":                    storeID,
		"marketplace_id":        d.MarketplaceID,
		"payment_policy_id":     d.PaymentPolicyID,
		"fulfillment_policy_id": d.FulfillmentPolicyID,
		"return_policy_id":      d.ReturnPolicyID,
		"merchant_location_key": d.MerchantLocationKey,
	}
	tag, err := s.db.Exec(ctx, queryUpdateStoreDefaults, args)
	if err != nil {
		return fmt.Errorf("updating store defaults: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearTokensByEbayIdentity disconnects every store matching the eBay user
// ID or username and reports how many were changed.
func (s *PostgresStore) ClearTokensByEbayIdentity(
	ctx context.Context,
	ebayUserID, username string,
) (int64, error) {
	if ebayUserID == "" && username == "" {
		return 0, nil
	}
	tag, err := s.db.Exec(ctx, queryClearTokensByEbayIdentity, ebayUserID, username)
	if err != nil {
		return 0, fmt.Errorf("clearing store tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

// --- Drafts ---

// CreateDraft inserts a new draft.
func (s *PostgresStore) CreateDraft(ctx context.Context, d *domain.Draft) error {
	args, err := draftArgs(d)
	if err != nil {
		return err
	}
	if err := s.db.QueryRow(ctx, queryCreateDraft, args).Scan(
		&d.ID, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting draft: %w", err)
	}
	d.Quantity = domain.ClampQuantity(d.Quantity)
	d.ImageCount = len(d.Images)
	return nil
}

// GetDraft retrieves a draft with its images.
func (s *PostgresStore) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	d := &domain.Draft{}
	if err := scanDraft(s.db.QueryRow(ctx, queryGetDraft, id), d); err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

// GetDraftForUser retrieves a draft owned by userID.
func (s *PostgresStore) GetDraftForUser(ctx context.Context, userID, id string) (*domain.Draft, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	d := &domain.Draft{}
	if err := scanDraft(s.db.QueryRow(ctx, queryGetDraftForUser, id, userID), d); err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

// ListDrafts returns the user's drafts without image payloads, plus the
// total count for the filter.
func (s *PostgresStore) ListDrafts(
	ctx context.Context,
	userID string,
	q *DraftQuery,
) ([]domain.Draft, int, error) {
	dataSQL, countSQL, args := q.ToSQL(userID)

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting drafts: %w", err)
	}

	rows, err := s.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	drafts := []domain.Draft{}
	for rows.Next() {
		var d domain.Draft
		if err := scanDraft(rows, &d); err != nil {
			return nil, 0, fmt.Errorf("scanning draft: %w", err)
		}
		d.Images = nil
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating drafts: %w", err)
	}

	return drafts, total, nil
}

// UpdateDraft writes the editable fields of d, provided the stored row is
// still in one of the from states. A row that has moved on since it was
// read yields domain.ErrConflictingOperation. Images are immutable.
func (s *PostgresStore) UpdateDraft(ctx context.Context, d *domain.Draft, from []domain.DraftStatus) error {
	args, err := draftArgs(d)
	if err != nil {
		return err
	}
	args["id"] = d.ID
	args["from"] = statusStrings(from)

	if err := s.db.QueryRow(ctx, queryUpdateDraft, args).Scan(&d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrConflictingOperation
		}
		return fmt.Errorf("updating draft: %w", err)
	}
	d.Quantity = domain.ClampQuantity(d.Quantity)
	return nil
}

// SetDraftStatus sets the status unconditionally and clears the error.
func (s *PostgresStore) SetDraftStatus(ctx context.Context, id string, status domain.DraftStatus) error {
	return s.execDraft(ctx, "setting draft status", querySetDraftStatus, id, string(status))
}

// TransitionDraftStatus moves a draft to `to` only if it is currently in one
// of the `from` states. It reports whether the transition happened.
func (s *PostgresStore) TransitionDraftStatus(
	ctx context.Context,
	id string,
	from []domain.DraftStatus,
	to domain.DraftStatus,
) (bool, error) {
	if !validID(id) {
		return false, ErrNotFound
	}

	tag, err := s.db.Exec(ctx, queryTransitionDraftStatus, id, statusStrings(from), string(to))
	if err != nil {
		return false, fmt.Errorf("transitioning draft status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func statusStrings(states []domain.DraftStatus) []string {
	out := make([]string, len(states))
	for i, st := range states {
		out[i] = string(st)
	}
	return out
}

// SetDraftOfferID records the offer created for a draft.
func (s *PostgresStore) SetDraftOfferID(ctx context.Context, id, offerID string) error {
	return s.execDraft(ctx, "setting draft offer", querySetDraftOfferID, id, offerID)
}

// SetDraftCategory replaces the draft category.
func (s *PostgresStore) SetDraftCategory(ctx context.Context, id, categoryID string) error {
	return s.execDraft(ctx, "setting draft category", querySetDraftCategory, id, categoryID)
}

// MarkDraftPublished links a draft to its listing.
func (s *PostgresStore) MarkDraftPublished(ctx context.Context, id, listingID string) error {
	return s.execDraft(ctx, "marking draft published", queryMarkDraftPublished, id, listingID)
}

// MarkDraftFailed records a failed publish attempt.
func (s *PostgresStore) MarkDraftFailed(ctx context.Context, id, message string) error {
	return s.execDraft(ctx, "marking draft failed", queryMarkDraftFailed, id, message)
}

func (s *PostgresStore) execDraft(ctx context.Context, op, query, id string, arg any) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := s.db.Exec(ctx, query, id, arg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Listings ---

// UpsertListingByOfferID inserts or updates a listing keyed by its eBay
// offer ID.
func (s *PostgresStore) UpsertListingByOfferID(ctx context.Context, l *domain.Listing) error {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	status := l.Status
	if status == "" {
		status = domain.ListingActive
	}

	args := pgx.NamedArgs{
		"store_id":        l.StoreID,
		"ebay_offer_id":   l.EbayOfferID,
		"ebay_listing_id": l.EbayListingID,
		"sku":             l.SKU,
		"title":           l.Title,
		"description":     l.Description,
		"price":           l.Price,
		"quantity":        domain.ClampQuantity(l.Quantity),
		"status":          status,
		"marketplace_id":  l.MarketplaceID,
		"category_id":     l.CategoryID,
		"condition":       l.Condition,
		"images":          images,
		"listed_at":       l.ListedAt,
	}

	if err := s.db.QueryRow(ctx, queryUpsertListingByOfferID, args).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting listing: %w", err)
	}
	l.Status = status
	return nil
}

// GetListingForUser retrieves a listing owned by userID.
func (s *PostgresStore) GetListingForUser(ctx context.Context, userID, id string) (*domain.Listing, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	l := &domain.Listing{}
	if err := scanListing(s.db.QueryRow(ctx, queryGetListingForUser, id, userID), l); err != nil {
		return nil, notFound(err)
	}
	return l, nil
}

// ListListings queries the user's listings with optional filters, returning
// results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	userID string,
	q *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := q.ToSQL(userID)

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// UpdateListingPriceQuantity writes whichever of price and quantity is set.
func (s *PostgresStore) UpdateListingPriceQuantity(
	ctx context.Context,
	id string,
	price *string,
	quantity *int,
) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := s.db.Exec(ctx, queryUpdateListingPriceQuantity, id, price, quantity)
	if err != nil {
		return fmt.Errorf("updating listing price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateListingStatus sets the local listing status.
func (s *PostgresStore) UpdateListingStatus(ctx context.Context, id, status string) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := s.db.Exec(ctx, queryUpdateListingStatus, id, status)
	if err != nil {
		return fmt.Errorf("updating listing status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkListingPublished marks a listing active after a (re)publish.
func (s *PostgresStore) MarkListingPublished(
	ctx context.Context,
	id, ebayListingID string,
	listedAt time.Time,
) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := s.db.Exec(ctx, queryMarkListingPublished, id, ebayListingID, listedAt)
	if err != nil {
		return fmt.Errorf("marking listing published: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Scan helpers ---

func (s *PostgresStore) scanStore(row pgx.Row, st *domain.Store) error {
	var access, refresh string
	if err := row.Scan(
		&st.ID, &st.UserID, &st.EbayUserID, &st.EbayUsername, &st.StoreName,
		&access, &refresh, &st.TokenExpiry,
		&st.MarketplaceID, &st.PaymentPolicyID, &st.FulfillmentPolicyID,
		&st.ReturnPolicyID, &st.MerchantLocationKey,
		&st.Active, &st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return err
	}

	var err error
	if st.AccessToken, err = s.box.Open(access); err != nil {
		return fmt.Errorf("opening access token: %w", err)
	}
	if st.RefreshToken, err = s.box.Open(refresh); err != nil {
		return fmt.Errorf("opening refresh token: %w", err)
	}
	return nil
}

func scanDraft(row pgx.Row, d *domain.Draft) error {
	var specifics, raw []byte
	var status string
	if err := row.Scan(
		&d.ID, &d.StoreID, &status, &d.Images, &d.MarketplaceID,
		&d.Title, &d.Description, &d.CategoryID, &d.Condition, &d.Price, &d.Quantity, &d.SKU,
		&specifics, &d.AINotes, &d.AIExtractedText, &raw, &d.Error,
		&d.OfferID, &d.PublishedListingID,
		&d.CreatedAt, &d.UpdatedAt, &d.ImageCount,
	); err != nil {
		return err
	}
	d.Status = domain.DraftStatus(status)

	d.Specifics = map[string]string{}
	if len(specifics) > 0 {
		if err := json.Unmarshal(specifics, &d.Specifics); err != nil {
			return fmt.Errorf("unmarshaling draft specifics: %w", err)
		}
	}
	if len(raw) > 0 {
		d.AIRaw = json.RawMessage(raw)
	}
	if d.AINotes == nil {
		d.AINotes = []string{}
	}
	return nil
}

func scanListing(row pgx.Row, l *domain.Listing) error {
	if err := row.Scan(
		&l.ID, &l.StoreID, &l.EbayOfferID, &l.EbayListingID, &l.SKU, &l.Title,
		&l.Description, &l.Price, &l.Quantity, &l.Status, &l.MarketplaceID, &l.CategoryID,
		&l.Condition, &l.Images, &l.ListedAt, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return err
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	return nil
}

func draftArgs(d *domain.Draft) (pgx.NamedArgs, error) {
	specifics := d.Specifics
	if specifics == nil {
		specifics = map[string]string{}
	}
	specificsJSON, err := json.Marshal(specifics)
	if err != nil {
		return nil, fmt.Errorf("marshaling specifics: %w", err)
	}

	notes := d.AINotes
	if notes == nil {
		notes = []string{}
	}
	images := d.Images
	if images == nil {
		images = []string{}
	}

	var raw []byte
	if len(d.AIRaw) > 0 {
		raw = d.AIRaw
	}

	marketplace := d.MarketplaceID
	if marketplace == "" {
		marketplace = domain.DefaultMarketplace
	}

	return pgx.NamedArgs{
		"store_id":          d.StoreID,
		"status":            string(d.Status),
		"images":            images,
		"marketplace_id":    marketplace,
		"title":             d.Title,
		"description":       d.Description,
		"category_id":       d.CategoryID,
		"condition":         d.Condition,
		"price":             d.Price,
		"quantity":          d.Quantity,
		"sku":               d.SKU,
		"specifics":         specificsJSON,
		"ai_notes":          notes,
		"ai_extracted_text": d.AIExtractedText,
		"ai_raw":            raw,
		"error":             d.Error,
	}, nil
}

// validID rejects identifiers Postgres would fail to cast to UUID.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
