package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/droplist/internal/api/handlers"
	"github.com/donaldgifford/droplist/internal/config"
	"github.com/donaldgifford/droplist/internal/drafts"
	"github.com/donaldgifford/droplist/internal/ebay"
	"github.com/donaldgifford/droplist/internal/oauthstate"
	"github.com/donaldgifford/droplist/internal/offersync"
	"github.com/donaldgifford/droplist/internal/publish"
	"github.com/donaldgifford/droplist/internal/secrets"
	"github.com/donaldgifford/droplist/internal/seller"
	"github.com/donaldgifford/droplist/internal/store"
	"github.com/donaldgifford/droplist/internal/webhook"
	"github.com/donaldgifford/droplist/pkg/analyze"
)

// services is the wired application graph shared by serve and sync.
type services struct {
	store    *store.PostgresStore
	redis    *redis.Client
	limiter  *ebay.RateLimiter
	drafts   *drafts.Service
	workflow *publish.Workflow
	listings *publish.ListingService
	seller   *seller.Service
	sync     *offersync.Service
	webhooks *webhook.Service
}

// checks returns the readiness probes for the backing services.
func (s *services) checks() map[string]handlers.Pinger {
	c := map[string]handlers.Pinger{"database": s.store}
	if s.redis != nil {
		c["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return s.redis.Ping(ctx).Err()
		})
	}
	return c
}

func (s *services) close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	s.store.Close()
}

func buildServices(ctx context.Context, cfg *config.Config, log *slog.Logger) (*services, error) {
	box, err := secrets.NewBox(cfg.Secrets.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("loading token key: %w", err)
	}
	if box == nil {
		log.Warn("secrets.token_key not set, eBay tokens are stored unencrypted")
	}

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(),
		store.WithSecrets(box),
		store.WithPoolSize(cfg.Database.PoolSize),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	svc := &services{store: pg}

	var states oauthstate.Store
	if cfg.Redis.Addr != "" {
		svc.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		states = oauthstate.NewRedisStore(svc.redis, oauthstate.WithTTL(cfg.Redis.StateTTL))
	} else {
		log.Warn("redis.addr not set, OAuth state is kept in memory")
		states = oauthstate.NewMemoryStore(oauthstate.WithTTL(cfg.Redis.StateTTL))
	}

	endpoints := ebay.EndpointsFor(ebay.Environment(cfg.Ebay.Environment))
	if cfg.Ebay.TokenURL != "" {
		endpoints.TokenURL = cfg.Ebay.TokenURL
	}
	if cfg.Ebay.AuthURL != "" {
		endpoints.AuthURL = cfg.Ebay.AuthURL
	}
	if cfg.Ebay.APIURL != "" {
		endpoints.APIURL = cfg.Ebay.APIURL
	}

	httpClient := &http.Client{Timeout: cfg.Ebay.Timeout}

	svc.limiter = ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	tm := ebay.NewTokenManager(cfg.Ebay.ClientID, cfg.Ebay.ClientSecret,
		ebay.WithTokenURL(endpoints.TokenURL),
		ebay.WithAuthURL(endpoints.AuthURL),
		ebay.WithRedirectURL(cfg.Ebay.RedirectURI),
		ebay.WithScopes(ebay.SellerScopes),
		ebay.WithHTTPClient(httpClient),
	)

	sell := ebay.NewSellClient(
		ebay.WithBaseURL(endpoints.APIURL),
		ebay.WithSellHTTPClient(httpClient),
		ebay.WithRateLimiter(svc.limiter),
	)

	tokens := seller.NewTokens(pg, tm, log)
	svc.seller = seller.NewService(pg, sell, tm, tokens, states, log)

	svc.drafts = drafts.NewService(pg, newAnalyzer(cfg.Analyzer), drafts.WithLogger(log))

	svc.workflow = publish.NewWorkflow(pg, sell, tokens,
		publish.WithLogger(log),
		publish.WithPublicBaseURL(cfg.Server.PublicBaseURL),
	)
	svc.listings = publish.NewListingService(pg, sell, tokens, publish.WithLogger(log))

	paginator := ebay.NewPaginator(sell,
		ebay.WithPageSize(cfg.Ebay.Sync.PageSize),
		ebay.WithMaxPages(cfg.Ebay.Sync.MaxPages),
	)
	svc.sync = offersync.NewService(pg, tokens, paginator, log)

	svc.webhooks = webhook.NewService(pg, cfg.Webhook.VerificationToken, cfg.Webhook.EndpointURL, log)

	return svc, nil
}

func newAnalyzer(cfg config.AnalyzerConfig) analyze.Analyzer {
	opts := []analyze.Option{
		analyze.WithEndpoint(cfg.Endpoint),
		analyze.WithModel(cfg.Model),
		analyze.WithTimeout(cfg.Timeout),
	}
	if cfg.Provider == "anthropic" {
		return analyze.NewAnthropicAnalyzer(cfg.APIKey, opts...)
	}
	return analyze.NewOpenAIAnalyzer(cfg.APIKey, opts...)
}
