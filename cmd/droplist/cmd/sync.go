package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/droplist/internal/config"
	"github.com/donaldgifford/droplist/pkg/logger"
)

var syncTimeout time.Duration

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync eBay offers for every connected store once",
	Long: "Runs the same sync as the scheduler, once, across all connected stores. " +
		"Useful from an external cron when schedule.sync_interval is 0.",
	RunE: runSync,
}

func init() {
	syncCmd.Flags().DurationVar(&syncTimeout, "timeout", 10*time.Minute, "overall sync deadline")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), syncTimeout)
	defer cancel()

	svc, err := buildServices(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer svc.close()

	if err := svc.sync.SyncAll(ctx); err != nil {
		return fmt.Errorf("syncing stores: %w", err)
	}

	q := svc.limiter.Quota()
	log.Info("sync complete", "ebay_calls", q.Used, "remaining", q.Remaining)
	return nil
}
