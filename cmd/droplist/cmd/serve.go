package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mw "github.com/donaldgifford/droplist/internal/api/middleware"
	"github.com/donaldgifford/droplist/internal/api/router"
	"github.com/donaldgifford/droplist/internal/config"
	"github.com/donaldgifford/droplist/internal/offersync"
	"github.com/donaldgifford/droplist/internal/telemetry"
	"github.com/donaldgifford/droplist/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and sync scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	svc, err := buildServices(startCtx, cfg, log)
	cancel()
	if err != nil {
		return err
	}
	defer svc.close()

	if cfg.Auth.Disabled {
		log.Warn("auth.disabled is set, trusting the " + mw.UserIDHeader + " header")
	}

	e, _ := router.New(router.Deps{
		Drafts:    svc.drafts,
		Publisher: svc.workflow,
		Listings:  svc.listings,
		Seller:    svc.seller,
		Syncer:    svc.sync,
		Webhooks:  svc.webhooks,
		Quota:     svc.limiter,
		Checks:    svc.checks(),
		Auth: mw.AuthConfig{
			Secret:   cfg.Auth.JWTSecret,
			Issuer:   cfg.Auth.Issuer,
			Disabled: cfg.Auth.Disabled,
		},
		Logger:  log,
		Version: Version,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	var sched *offersync.Scheduler
	if cfg.Schedule.SyncInterval > 0 {
		sched, err = offersync.NewScheduler(svc.sync, cfg.Schedule.SyncInterval, log)
		if err != nil {
			return fmt.Errorf("creating sync scheduler: %w", err)
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "ebay_environment", cfg.Ebay.Environment)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("sync still running at shutdown")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("flushing traces", "error", err)
	}

	log.Info("server stopped")
	return nil
}
