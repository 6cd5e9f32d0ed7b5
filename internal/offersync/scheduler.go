package offersync

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs SyncAll periodically.
type Scheduler struct {
	cron *cron.Cron
	svc  *Service
	log  *slog.Logger
}

// NewScheduler creates a Scheduler that syncs every connected store each
// interval. Runs never overlap.
func NewScheduler(svc *Service, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron: c,
		svc:  svc,
		log:  log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runSync); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins running scheduled syncs.
func (s *Scheduler) Start() {
	s.log.Info("sync scheduler started")
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once a running
// sync finishes.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("sync scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSync() {
	ctx := context.Background()
	s.log.Info("scheduled sync starting")
	if err := s.svc.SyncAll(ctx); err != nil {
		s.log.Error("scheduled sync failed", "error", err)
	}
}
