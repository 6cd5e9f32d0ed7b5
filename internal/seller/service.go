package seller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/oauthstate"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// defaultStoreName is used when eBay tells us nothing about the account.
const defaultStoreName = "eBay Store"

// Service implements the seller account operations.
type Service struct {
	store  store.Store
	sell   ebay.SellAPI
	tm     TokenManager
	tokens TokenResolver
	states oauthstate.Store
	logger *slog.Logger
}

// NewService creates a seller Service.
func NewService(
	s store.Store,
	sell ebay.SellAPI,
	tm TokenManager,
	tokens TokenResolver,
	states oauthstate.Store,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:  s,
		sell:   sell,
		tm:     tm,
		tokens: tokens,
		states: states,
		logger: logger,
	}
}

// ActiveStore returns the user's active store, which must hold a token.
func (s *Service) ActiveStore(ctx context.Context, userID string) (*domain.Store, error) {
	st, err := s.store.GetActiveStore(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}
	if !st.Connected() {
		return nil, ErrNotConnected
	}
	return st, nil
}

// connectedStore loads the active store and resolves its token.
func (s *Service) connectedStore(ctx context.Context, userID string) (*domain.Store, string, error) {
	st, err := s.ActiveStore(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Resolve(ctx, st)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}

// ConnectURL starts the OAuth flow for userID and returns the eBay consent
// URL to redirect to.
func (s *Service) ConnectURL(ctx context.Context, userID string) (string, error) {
	state, err := s.states.Issue(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("issuing oauth state: %w", err)
	}
	return s.tm.AuthCodeURL(state), nil
}

// Callback completes the OAuth flow. The state nonce identifies the user;
// the code is exchanged for tokens and a new active store is created.
func (s *Service) Callback(ctx context.Context, code, state string) (*domain.Store, error) {
	if code == "" {
		return nil, &domain.ValidationError{Field: "code", Message: "No authorization code received from eBay"}
	}

	userID, err := s.states.Consume(ctx, state)
	if err != nil {
		return nil, err
	}

	tok, err := s.tm.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	var (
		identity *ebay.Identity
		account  *ebay.Account
		g        errgroup.Group
	)
	g.Go(func() error {
		id, err := s.sell.GetIdentity(ctx, tok.AccessToken)
		if err != nil {
			s.logger.WarnContext(ctx, "identity lookup failed", "error", err)
			return nil
		}
		identity = id
		return nil
	})
	g.Go(func() error {
		acct, err := s.sell.GetAccount(ctx, tok.AccessToken)
		if err != nil {
			s.logger.WarnContext(ctx, "account lookup failed", "error", err)
			return nil
		}
		account = acct
		return nil
	})
	_ = g.Wait()

	st := &domain.Store{
		UserID:       userID,
		StoreName:    storeName(identity, account),
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry
		st.TokenExpiry = &expiry
	}
	if identity != nil {
		st.EbayUserID = identity.UserID
		st.EbayUsername = identity.Username
	}
	if st.EbayUsername == "" && account != nil {
		st.EbayUsername = account.Username
	}

	if err := s.store.CreateStore(ctx, st); err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	s.logger.InfoContext(ctx, "eBay account connected",
		"store_id", st.ID,
		"user_id", userID,
		"store_name", st.StoreName,
	)
	return st, nil
}

func storeName(identity *ebay.Identity, account *ebay.Account) string {
	switch {
	case identity != nil && identity.Username != "":
		return identity.Username
	case account != nil && account.Username != "":
		return account.Username
	case account != nil && account.AccountID != "":
		return account.AccountID
	default:
		return defaultStoreName
	}
}

// Requirements lists the defaults a store still needs before publishing.
type Requirements struct {
	NeedsMerchantLocationKey bool `json:"needsMerchantLocationKey"`
	NeedsPaymentPolicyID     bool `json:"needsPaymentPolicyId"`
	NeedsFulfillmentPolicyID bool `json:"needsFulfillmentPolicyId"`
	NeedsReturnPolicyID      bool `json:"needsReturnPolicyId"`
}

// Diagnostics is a snapshot of what eBay reports about the connected
// account. Lookup failures are reported in Errors instead of failing the
// whole call.
type Diagnostics struct {
	OK               bool                     `json:"ok"`
	MarketplaceID    string                   `json:"marketplaceId"`
	ConnectedAs      string                   `json:"connectedAs,omitempty"`
	StoredDefaults   domain.Defaults          `json:"storedDefaults"`
	Identity         *ebay.Identity           `json:"identity,omitempty"`
	Account          *ebay.Account            `json:"account,omitempty"`
	Policies         *ebay.Policies           `json:"policies,omitempty"`
	Locations        []ebay.InventoryLocation `json:"locations,omitempty"`
	Errors           map[string]string        `json:"errors,omitempty"`
	NextRequirements Requirements             `json:"nextRequirements"`
}

// Diagnostics queries identity, account, policies, and locations in
// parallel.
func (s *Service) Diagnostics(ctx context.Context, userID string) (*Diagnostics, error) {
	st, token, err := s.connectedStore(ctx, userID)
	if err != nil {
		return nil, err
	}

	marketplace := st.Marketplace()
	d := &Diagnostics{
		OK:             true,
		MarketplaceID:  marketplace,
		ConnectedAs:    firstNonEmpty(st.EbayUsername, st.StoreName),
		StoredDefaults: st.Defaults(),
		NextRequirements: Requirements{
			NeedsMerchantLocationKey: st.MerchantLocationKey == "",
			NeedsPaymentPolicyID:     st.PaymentPolicyID == "",
			NeedsFulfillmentPolicyID: st.FulfillmentPolicyID == "",
			NeedsReturnPolicyID:      st.ReturnPolicyID == "",
		},
	}

	var (
		g                         errgroup.Group
		identityErr, accountErr   error
		policiesErr, locationsErr error
	)
	g.Go(func() error {
		d.Identity, identityErr = s.sell.GetIdentity(ctx, token)
		return nil
	})
	g.Go(func() error {
		d.Account, accountErr = s.sell.GetAccount(ctx, token)
		return nil
	})
	g.Go(func() error {
		d.Policies, policiesErr = s.sell.GetPolicies(ctx, token, marketplace)
		return nil
	})
	g.Go(func() error {
		d.Locations, locationsErr = s.sell.GetInventoryLocations(ctx, token)
		return nil
	})
	_ = g.Wait()

	for name, err := range map[string]error{
		"identity":  identityErr,
		"account":   accountErr,
		"policies":  policiesErr,
		"locations": locationsErr,
	} {
		if err == nil {
			continue
		}
		if d.Errors == nil {
			d.Errors = make(map[string]string)
		}
		d.Errors[name] = err.Error()
	}

	return d, nil
}

// OptInBusinessPolicies asks eBay to enable business policies for the
// account. eBay may take up to a day to process it.
func (s *Service) OptInBusinessPolicies(ctx context.Context, userID string) error {
	_, token, err := s.connectedStore(ctx, userID)
	if err != nil {
		return err
	}
	return s.sell.OptInToProgram(ctx, token, ebay.ProgramSellingPolicyManagement)
}

// ProgramStatus reports the programs the account has opted into.
type ProgramStatus struct {
	HasBusinessPolicies bool           `json:"hasBusinessPolicies"`
	Programs            []ebay.Program `json:"programs"`
}

// Programs returns the account's program opt-ins.
func (s *Service) Programs(ctx context.Context, userID string) (*ProgramStatus, error) {
	_, token, err := s.connectedStore(ctx, userID)
	if err != nil {
		return nil, err
	}
	programs, err := s.sell.GetOptedInPrograms(ctx, token)
	if err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []ebay.Program{}
	}
	return &ProgramStatus{
		HasBusinessPolicies: ebay.HasProgram(programs, ebay.ProgramSellingPolicyManagement),
		Programs:            programs,
	}, nil
}

// LocationRequest describes a ship-from location to create.
type LocationRequest struct {
	MerchantLocationKey string
	Country             string
	PostalCode          string
	Phone               string
}

// CreateLocation creates an inventory location on eBay and makes it the
// store's default.
func (s *Service) CreateLocation(ctx context.Context, userID string, req LocationRequest) (string, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"merchantLocationKey", &req.MerchantLocationKey},
		{"country", &req.Country},
		{"postalCode", &req.PostalCode},
		{"phone", &req.Phone},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return "", domain.Required(f.name)
		}
	}

	st, token, err := s.connectedStore(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.sell.CreateInventoryLocation(ctx, token, req.MerchantLocationKey, ebay.LocationInput{
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	}); err != nil {
		return "", err
	}

	if err := s.store.UpdateStoreDefaults(ctx, st.ID, domain.Defaults{
		MerchantLocationKey: req.MerchantLocationKey,
	}); err != nil {
		return "", fmt.Errorf("saving location default: %w", err)
	}

	s.logger.InfoContext(ctx, "inventory location created",
		"store_id", st.ID,
		"merchant_location_key", req.MerchantLocationKey,
	)
	return req.MerchantLocationKey, nil
}

// UpdateDefaults stores the non-empty fields of d on the user's active
// store. The store does not need to be connected.
func (s *Service) UpdateDefaults(ctx context.Context, userID string, d domain.Defaults) (*domain.Store, error) {
	st, err := s.store.GetActiveStore(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	d = domain.Defaults{
		MarketplaceID:       strings.TrimSpace(d.MarketplaceID),
		PaymentPolicyID:     strings.TrimSpace(d.PaymentPolicyID),
		FulfillmentPolicyID: strings.TrimSpace(d.FulfillmentPolicyID),
		ReturnPolicyID:      strings.TrimSpace(d.ReturnPolicyID),
	}
	if err := s.store.UpdateStoreDefaults(ctx, st.ID, d); err != nil {
		return nil, fmt.Errorf("updating defaults: %w", err)
	}
	return s.store.GetStore(ctx, st.ID)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
