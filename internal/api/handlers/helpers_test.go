package handlers

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"

	mw "github.com/donaldgifford/droplist/internal/api/middleware"
)

const testUserID = "user-1"

// newAuthedAPI returns a test API whose requests carry userID as the
// authenticated caller. An empty userID leaves requests anonymous.
func newAuthedAPI(t *testing.T, userID string) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	if userID != "" {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, mw.WithUserID(ctx.Context(), userID)))
		})
	}
	return api
}
