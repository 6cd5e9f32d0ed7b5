// Package seller manages connected eBay seller accounts: the OAuth connect
// flow, access token resolution, and account-level setup such as business
// policy opt-in, ship-from locations, and listing defaults.
package seller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/store"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

var (
	// ErrNoStore is returned when the user has not connected any store.
	ErrNoStore = errors.New("no connected eBay account")
	// ErrNotConnected is returned when the store holds no access token.
	ErrNotConnected = errors.New("eBay account not connected")
)

// TokenManager is the subset of ebay.TokenManager the seller package uses.
type TokenManager interface {
	EnsureValid(ctx context.Context, c ebay.Credentials) (ebay.TokenResult, error)
	Refresh(ctx context.Context, refreshToken string) (ebay.TokenResult, error)
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// TokenResolver yields an access token for a store, persisting refreshed
// tokens as a side effect.
type TokenResolver interface {
	Resolve(ctx context.Context, st *domain.Store) (string, error)
	ForceRefresh(ctx context.Context, st *domain.Store) (string, error)
}

// Tokens resolves and persists seller access tokens.
type Tokens struct {
	store  store.Store
	tm     TokenManager
	logger *slog.Logger
}

// NewTokens creates a Tokens resolver.
func NewTokens(s store.Store, tm TokenManager, logger *slog.Logger) *Tokens {
	return &Tokens{store: s, tm: tm, logger: logger}
}

// Resolve returns a usable access token for st, refreshing it when it is
// missing or about to expire. A failed refresh falls back to the stored
// access token when there is one; eBay rejects it later if it is truly dead.
func (t *Tokens) Resolve(ctx context.Context, st *domain.Store) (string, error) {
	res, err := t.tm.EnsureValid(ctx, credentials(st))
	if err != nil {
		if st.AccessToken != "" {
			t.logger.WarnContext(ctx, "token refresh failed, using stored token",
				"store_id", st.ID,
				"error", err,
			)
			return st.AccessToken, nil
		}
		return "", fmt.Errorf("resolving access token: %w", err)
	}

	if res.Refreshed {
		t.persist(ctx, st, res)
	}
	return res.AccessToken, nil
}

// ForceRefresh refreshes the token regardless of its expiry. It is used
// after eBay answered 401 to a request made with the stored token.
func (t *Tokens) ForceRefresh(ctx context.Context, st *domain.Store) (string, error) {
	if st.RefreshToken == "" {
		return "", ebay.ErrTokenUnavailable
	}
	res, err := t.tm.Refresh(ctx, st.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("refreshing access token: %w", err)
	}
	t.persist(ctx, st, res)
	return res.AccessToken, nil
}

func (t *Tokens) persist(ctx context.Context, st *domain.Store, res ebay.TokenResult) {
	st.AccessToken = res.AccessToken
	expiry := res.Expiry
	st.TokenExpiry = &expiry

	if err := t.store.UpdateStoreTokens(ctx, st.ID, res.AccessToken, res.Expiry); err != nil {
		t.logger.ErrorContext(ctx, "persisting refreshed token",
			"store_id", st.ID,
			"error", err,
		)
		return
	}
	t.logger.DebugContext(ctx, "access token refreshed", "store_id", st.ID, "expiry", res.Expiry)
}

func credentials(st *domain.Store) ebay.Credentials {
	return ebay.Credentials{
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
		Expiry:       st.TokenExpiry,
	}
}
