// Package main implements a mock eBay Sell API server for local development.
// It seeds offers from a JSON fixture and keeps inventory items, offers and
// merchant locations in memory so the full draft to listing flow can run
// without real eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"
)

type offersFixture struct {
	Offers []json.RawMessage `json:"offers"`
	Total  int               `json:"total"`
}

type offersPage struct {
	Offers []json.RawMessage `json:"offers"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Next   string            `json:"next,omitempty"`
}

// sellAPI is the in-memory seller account behind every route.
type sellAPI struct {
	logger *slog.Logger

	mu        sync.Mutex
	offers    []map[string]any
	items     map[string]json.RawMessage
	locations []map[string]any
	programs  []string
	nextID    int
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/offers_response.json", "path to offers fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	api, err := newSellAPI(logger, fixture)
	if err != nil {
		logger.Error("failed to seed offers", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "offers", len(fixture.Offers))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, api.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*offersFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp offersFixture
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func newSellAPI(logger *slog.Logger, fixture *offersFixture) (*sellAPI, error) {
	api := &sellAPI{
		logger: logger,
		items:  make(map[string]json.RawMessage),
		nextID: 10000,
	}
	for _, raw := range fixture.Offers {
		var o map[string]any
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("parsing offer: %w", err)
		}
		api.offers = append(api.offers, o)
	}
	return api, nil
}

func (a *sellAPI) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /oauth2/authorize", authorizeHandler(a.logger))
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(a.logger))
	mux.HandleFunc("GET /commerce/identity/v1/user/", a.identity)

	mux.HandleFunc("GET /sell/account/v1/privilege", a.privilege)
	mux.HandleFunc("GET /sell/account/v1/payment_policy", policies("paymentPolicies", "paymentPolicyId", "Immediate payment"))
	mux.HandleFunc("GET /sell/account/v1/fulfillment_policy", policies("fulfillmentPolicies", "fulfillmentPolicyId", "USPS Ground Advantage"))
	mux.HandleFunc("GET /sell/account/v1/return_policy", policies("returnPolicies", "returnPolicyId", "30 day returns"))
	mux.HandleFunc("POST /sell/account/v1/program/opt_in", a.optIn)
	mux.HandleFunc("GET /sell/account/v1/program/get_opted_in_programs", a.optedInPrograms)

	mux.HandleFunc("PUT /sell/inventory/v1/inventory_item/{sku}", a.putInventoryItem)
	mux.HandleFunc("GET /sell/inventory/v1/offer", a.listOffers)
	mux.HandleFunc("POST /sell/inventory/v1/offer", a.createOffer)
	mux.HandleFunc("GET /sell/inventory/v1/offer/{id}", a.getOffer)
	mux.HandleFunc("PUT /sell/inventory/v1/offer/{id}", a.updateOffer)
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/publish", a.publishOffer)
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/withdraw", a.withdrawOffer)
	mux.HandleFunc("GET /sell/inventory/v1/location", a.listLocations)
	mux.HandleFunc("POST /sell/inventory/v1/location/{key}", a.createLocation)

	mux.HandleFunc("GET /commerce/taxonomy/v1/get_default_category_tree_id", categoryTreeHandler)
	mux.HandleFunc("GET /commerce/taxonomy/v1/category_tree/{tree}/get_category_suggestions", categorySuggestionsHandler)
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// writeEbayError mirrors the {"errors":[...]} envelope the Sell APIs use.
func writeEbayError(w http.ResponseWriter, status, code int, msg string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{
			"errorId":  code,
			"domain":   "API_INVENTORY",
			"category": "REQUEST",
			"message":  msg,
		}},
	})
}

// authorizeHandler skips the consent page and sends the browser straight
// back to redirect_uri with a code.
func authorizeHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirect := r.URL.Query().Get("redirect_uri")
		target, err := url.Parse(redirect)
		if redirect == "" || err != nil {
			http.Error(w, "redirect_uri required", http.StatusBadRequest)
			return
		}
		q := target.Query()
		q.Set("code", "mock-auth-code")
		q.Set("state", r.URL.Query().Get("state"))
		target.RawQuery = q.Encode()
		logger.Info("authorized mock seller", "redirect", target.String())
		http.Redirect(w, r, target.String(), http.StatusFound)
	}
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate Basic Auth header is present (don't verify creds).
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
			return
		}

		suffix := strconv.FormatInt(time.Now().UnixNano(), 16)
		resp := map[string]any{
			"access_token": "mock-user-token-" + suffix,
			"expires_in":   7200,
			"token_type":   "User Access Token",
		}

		switch grant := r.PostForm.Get("grant_type"); grant {
		case "authorization_code":
			if r.PostForm.Get("code") == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":             "invalid_grant",
					"error_description": "the provided authorization grant code is invalid",
				})
				return
			}
			resp["refresh_token"] = "mock-refresh-token"
			resp["refresh_token_expires_in"] = 47304000
		case "refresh_token":
			if r.PostForm.Get("refresh_token") == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":             "invalid_grant",
					"error_description": "the provided refresh token is invalid",
				})
				return
			}
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "unsupported_grant_type",
				"error_description": "grant type " + grant + " is not supported",
			})
			return
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("issued mock token", "grant_type", r.PostForm.Get("grant_type"))
	}
}

func (a *sellAPI) identity(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"userId":                    "mock-user-id",
		"username":                  "mock_seller",
		"accountType":               "INDIVIDUAL",
		"registrationMarketplaceId": "EBAY_US",
	})
}

func (a *sellAPI) privilege(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sellerRegistrationCompleted": true,
		"sellingLimit": map[string]any{
			"amount":   map[string]string{"currency": "USD", "value": "5000.00"},
			"quantity": 100,
		},
	})
}

func policies(listKey, idKey, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("marketplace_id") == "" {
			writeEbayError(w, http.StatusBadRequest, 20401, "marketplace_id is required")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"total": 1,
			listKey: []map[string]any{{
				idKey:  "mock-" + idKey,
				"name": name,
			}},
		})
	}
}

func (a *sellAPI) optIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProgramType string `json:"programType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProgramType == "" {
		writeEbayError(w, http.StatusBadRequest, 20403, "programType is required")
		return
	}
	a.mu.Lock()
	a.programs = append(a.programs, body.ProgramType)
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{})
	a.logger.Info("opted in", "program", body.ProgramType)
}

func (a *sellAPI) optedInPrograms(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	programs := make([]map[string]string, 0, len(a.programs))
	for _, p := range a.programs {
		programs = append(programs, map[string]string{"programType": p})
	}
	writeJSON(w, http.StatusOK, map[string]any{"programs": programs})
}

func (a *sellAPI) putInventoryItem(w http.ResponseWriter, r *http.Request) {
	var item json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeEbayError(w, http.StatusBadRequest, 2004, "Invalid request body")
		return
	}
	a.mu.Lock()
	a.items[r.PathValue("sku")] = item
	a.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (a *sellAPI) listOffers(w http.ResponseWriter, r *http.Request) {
	limit := 25
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	a.mu.Lock()
	total := len(a.offers)
	page := offersPage{Offers: []json.RawMessage{}, Total: total, Limit: limit, Offset: offset}
	if offset < total {
		for _, o := range a.offers[offset:min(offset+limit, total)] {
			raw, _ := json.Marshal(o) //nolint:errcheck // offers are decoded JSON
			page.Offers = append(page.Offers, raw)
		}
	}
	a.mu.Unlock()

	if offset+limit < total {
		page.Next = fmt.Sprintf("/sell/inventory/v1/offer?limit=%d&offset=%d", limit, offset+limit)
	}
	writeJSON(w, http.StatusOK, page)
	a.logger.Info("offers", "total", total, "returned", len(page.Offers), "offset", offset, "limit", limit)
}

func (a *sellAPI) createOffer(w http.ResponseWriter, r *http.Request) {
	var offer map[string]any
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		writeEbayError(w, http.StatusBadRequest, 2004, "Invalid request body")
		return
	}
	sku, _ := offer["sku"].(string)

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.items[sku]; !ok {
		writeEbayError(w, http.StatusBadRequest, 25702, "No inventory item found for sku "+sku)
		return
	}
	a.nextID++
	id := strconv.Itoa(a.nextID)
	offer["offerId"] = id
	offer["status"] = "UNPUBLISHED"
	a.offers = append(a.offers, offer)
	writeJSON(w, http.StatusCreated, map[string]string{"offerId": id})
}

// findOffer must be called with mu held.
func (a *sellAPI) findOffer(id string) map[string]any {
	for _, o := range a.offers {
		if o["offerId"] == id {
			return o
		}
	}
	return nil
}

func (a *sellAPI) getOffer(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	o := a.findOffer(r.PathValue("id"))
	if o == nil {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (a *sellAPI) updateOffer(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeEbayError(w, http.StatusBadRequest, 2004, "Invalid request body")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	o := a.findOffer(r.PathValue("id"))
	if o == nil {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available")
		return
	}
	for k, v := range patch {
		o[k] = v
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *sellAPI) publishOffer(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	o := a.findOffer(r.PathValue("id"))
	if o == nil {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available")
		return
	}
	if cat, _ := o["categoryId"].(string); cat == "" || cat == "1" {
		writeEbayError(w, http.StatusBadRequest, 25005, "The category ID you entered is not a leaf category")
		return
	}
	a.nextID++
	listingID := "11055" + strconv.Itoa(a.nextID)
	o["status"] = "PUBLISHED"
	o["listing"] = map[string]any{"listingId": listingID}
	writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
	a.logger.Info("published offer", "offer_id", o["offerId"], "listing_id", listingID)
}

func (a *sellAPI) withdrawOffer(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	o := a.findOffer(r.PathValue("id"))
	if o == nil {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available")
		return
	}
	var listingID string
	if l, ok := o["listing"].(map[string]any); ok {
		listingID, _ = l["listingId"].(string)
	}
	o["status"] = "UNPUBLISHED"
	writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
}

func (a *sellAPI) listLocations(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	locs := a.locations
	if locs == nil {
		locs = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": locs, "total": len(locs)})
}

func (a *sellAPI) createLocation(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeEbayError(w, http.StatusBadRequest, 2004, "Invalid request body")
		return
	}
	key := r.PathValue("key")

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, l := range a.locations {
		if l["merchantLocationKey"] == key {
			writeEbayError(w, http.StatusConflict, 25803, "Location "+key+" already exists")
			return
		}
	}
	body["merchantLocationKey"] = key
	body["merchantLocationStatus"] = "ENABLED"
	a.locations = append(a.locations, body)
	w.WriteHeader(http.StatusNoContent)
}

func categoryTreeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("marketplace_id") == "" {
		writeEbayError(w, http.StatusBadRequest, 62004, "marketplace_id is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"categoryTreeId": "0", "categoryTreeVersion": "130"})
}

func categorySuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, map[string]any{
		"categoryTreeId": r.PathValue("tree"),
		"categorySuggestions": []map[string]any{
			{"category": map[string]string{"categoryId": "11450", "categoryName": "Clothing, Shoes & Accessories"}},
			{"category": map[string]string{"categoryId": "99", "categoryName": "Everything Else: " + q}},
		},
	})
}
