package seller_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/seller"
	sellerMocks "github.com/donaldgifford/droplist/internal/seller/mocks"
	storeMocks "github.com/donaldgifford/droplist/internal/store/mocks"
	"github.com/donaldgifford/droplist/pkg/logger"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

func connectedStore() *domain.Store {
	expiry := time.Now().Add(-time.Minute)
	return &domain.Store{
		ID:           "store-1",
		UserID:       "user-1",
		StoreName:    "Shop",
		AccessToken:  "old-token",
		RefreshToken: "refresh",
		TokenExpiry:  &expiry,
	}
}

func TestTokens_Resolve(t *testing.T) {
	t.Parallel()

	newExpiry := time.Now().Add(2 * time.Hour)

	tests := []struct {
		name      string
		store     func() *domain.Store
		result    ebay.TokenResult
		err       error
		persist   bool
		want      string
		wantErrIs error
	}{
		{
			name:   "fresh token is returned unchanged",
			store:  connectedStore,
			result: ebay.TokenResult{AccessToken: "old-token", Expiry: newExpiry},
			want:   "old-token",
		},
		{
			name:    "refreshed token is persisted",
			store:   connectedStore,
			result:  ebay.TokenResult{AccessToken: "new-token", Expiry: newExpiry, Refreshed: true},
			persist: true,
			want:    "new-token",
		},
		{
			name:  "refresh failure falls back to stored token",
			store: connectedStore,
			err:   &ebay.TokenRefreshError{Status: 400, Body: "invalid_grant"},
			want:  "old-token",
		},
		{
			name: "refresh failure without stored token is fatal",
			store: func() *domain.Store {
				st := connectedStore()
				st.AccessToken = ""
				st.RefreshToken = ""
				return st
			},
			err:       ebay.ErrTokenUnavailable,
			wantErrIs: ebay.ErrTokenUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			mt := sellerMocks.NewMockTokenManager(t)
			st := tt.store()

			mt.EXPECT().EnsureValid(mock.Anything, ebay.Credentials{
				AccessToken:  st.AccessToken,
				RefreshToken: st.RefreshToken,
				Expiry:       st.TokenExpiry,
			}).Return(tt.result, tt.err).Once()

			if tt.persist {
				ms.EXPECT().UpdateStoreTokens(mock.Anything, "store-1", tt.result.AccessToken, tt.result.Expiry).
					Return(nil).Once()
			}

			tokens := seller.NewTokens(ms, mt, logger.Discard())
			got, err := tokens.Resolve(context.Background(), st)

			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.persist {
				assert.Equal(t, tt.want, st.AccessToken)
				assert.Equal(t, newExpiry, *st.TokenExpiry)
			}
		})
	}
}

func TestTokens_ResolvePersistFailureIsLogged(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mt := sellerMocks.NewMockTokenManager(t)
	expiry := time.Now().Add(time.Hour)

	mt.EXPECT().EnsureValid(mock.Anything, mock.Anything).
		Return(ebay.TokenResult{AccessToken: "new", Expiry: expiry, Refreshed: true}, nil).Once()
	ms.EXPECT().UpdateStoreTokens(mock.Anything, "store-1", "new", expiry).
		Return(errors.New("db down")).Once()

	got, err := seller.NewTokens(ms, mt, logger.Discard()).Resolve(context.Background(), connectedStore())
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestTokens_ForceRefresh(t *testing.T) {
	t.Parallel()

	t.Run("no refresh token", func(t *testing.T) {
		t.Parallel()

		st := connectedStore()
		st.RefreshToken = ""
		tokens := seller.NewTokens(storeMocks.NewMockStore(t), sellerMocks.NewMockTokenManager(t), logger.Discard())

		_, err := tokens.ForceRefresh(context.Background(), st)
		require.ErrorIs(t, err, ebay.ErrTokenUnavailable)
	})

	t.Run("refresh rejected", func(t *testing.T) {
		t.Parallel()

		mt := sellerMocks.NewMockTokenManager(t)
		mt.EXPECT().Refresh(mock.Anything, "refresh").
			Return(ebay.TokenResult{}, &ebay.TokenRefreshError{Status: 400}).Once()

		tokens := seller.NewTokens(storeMocks.NewMockStore(t), mt, logger.Discard())
		_, err := tokens.ForceRefresh(context.Background(), connectedStore())
		require.ErrorIs(t, err, ebay.ErrTokenRefreshFailed)
	})

	t.Run("refresh persisted", func(t *testing.T) {
		t.Parallel()

		expiry := time.Now().Add(time.Hour)
		ms := storeMocks.NewMockStore(t)
		mt := sellerMocks.NewMockTokenManager(t)
		mt.EXPECT().Refresh(mock.Anything, "refresh").
			Return(ebay.TokenResult{AccessToken: "fresh", Expiry: expiry, Refreshed: true}, nil).Once()
		ms.EXPECT().UpdateStoreTokens(mock.Anything, "store-1", "fresh", expiry).Return(nil).Once()

		got, err := seller.NewTokens(ms, mt, logger.Discard()).ForceRefresh(context.Background(), connectedStore())
		require.NoError(t, err)
		assert.Equal(t, "fresh", got)
	})
}
