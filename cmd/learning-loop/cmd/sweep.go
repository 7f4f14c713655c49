package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/learning-loop/internal/config"
	"github.com/sells-group/learning-loop/internal/engine"
	"github.com/sells-group/learning-loop/internal/research"
	"github.com/sells-group/learning-loop/internal/store"
	"github.com/sells-group/learning-loop/pkg/logger"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run an anomaly sweep once and exit",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	notifier := buildNotifier(cfg, log)

	eng := engine.NewEngine(
		st,
		research.NewStoreProvider(st),
		notifier,
		engine.WithLogger(log),
		engine.WithSweepWindowDays(cfg.Engine.SweepWindowDays),
		engine.WithSweepParallelism(cfg.Engine.SweepParallelism),
	)

	flagged, err := eng.SweepAll(ctx)
	if err != nil {
		return fmt.Errorf("running anomaly sweep: %w", err)
	}

	log.Info("sweep complete", "anomalies_flagged", flagged)
	return nil
}
