// Package router assembles the droplist HTTP server: echo middleware,
// the Huma API, and the echo-native routes eBay calls directly.
package router

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/droplist/internal/api/handlers"
	mw "github.com/donaldgifford/droplist/internal/api/middleware"
	"github.com/donaldgifford/droplist/pkg/logger"
)

const (
	// Title is the OpenAPI document title.
	Title = "droplist API"

	callbackPath = "/api/v1/ebay/callback"
	webhookPath  = "/api/v1/ebay/webhook"
	imagePath    = "/api/v1/drafts/:id/images/:index"
)

// Deps are the services behind the routes. Nil services are allowed when
// only the route table is needed, as in OpenAPI generation.
type Deps struct {
	Drafts    handlers.DraftService
	Publisher handlers.DraftPublisher
	Listings  handlers.ListingService
	Seller    handlers.SellerService
	Syncer    handlers.Syncer
	Webhooks  handlers.WebhookService
	Quota     handlers.QuotaReporter
	Checks    map[string]handlers.Pinger

	Auth    mw.AuthConfig
	Logger  *slog.Logger
	Version string
}

// New builds the echo server and its Huma API.
func New(d Deps) (*echo.Echo, huma.API) {
	log := d.Logger
	if log == nil {
		log = logger.Discard()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	auth := d.Auth
	if auth.Skipper == nil {
		auth.Skipper = mw.PublicRoutes(callbackPath, webhookPath, imagePath)
	}
	e.Use(mw.Auth(auth))

	health := handlers.NewHealthHandler(d.Checks)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	version := d.Version
	if version == "" {
		version = "dev"
	}
	cfg := huma.DefaultConfig(Title, version)
	cfg.Info.Description = "Turn item photos into eBay listings: analyze, review, publish, and keep listings in sync."
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	cfg.Security = []map[string][]string{{"bearer": {}}}
	api := humaecho.New(e, cfg)

	drafts := handlers.NewDraftsHandler(d.Drafts, d.Publisher)
	seller := handlers.NewSellerHandler(d.Seller)

	handlers.RegisterDraftRoutes(api, drafts)
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(d.Listings))
	handlers.RegisterSellerRoutes(api, seller)
	handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(d.Syncer))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.Quota))

	handlers.RegisterDraftImageRoute(e, drafts)
	handlers.RegisterCallbackRoute(e, seller)
	handlers.RegisterWebhookRoutes(e, handlers.NewWebhookHandler(d.Webhooks, log))

	return e, api
}

func init() {
	// Huma's own validation failures use the same {"error": ...} body as
	// every handler error.
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		he := &handlers.HTTPError{Status: status, Message: msg}
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) > 0 {
			he.Hints = map[string]any{"details": details}
		}
		return he
	}
}

