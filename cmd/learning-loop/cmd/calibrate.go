package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/learning-loop/internal/config"
	"github.com/sells-group/learning-loop/internal/engine"
	"github.com/sells-group/learning-loop/internal/notify"
	"github.com/sells-group/learning-loop/internal/research"
	"github.com/sells-group/learning-loop/internal/store"
	"github.com/sells-group/learning-loop/pkg/logger"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

var calibrateActor string

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Run a calibration pass once and exit",
	RunE:  runCalibrate,
}

func init() {
	calibrateCmd.Flags().StringVar(&calibrateActor, "actor", "ops-cli", "actor recorded for the manual run")
	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng := engine.NewEngine(
		st,
		research.NewStoreProvider(st),
		notify.NewNoOpNotifier(log),
		engine.WithLogger(log),
		engine.WithLookbackDays(cfg.Engine.LookbackDays),
	)

	results, err := eng.Recalibrate(ctx, domain.TriggerManual, calibrateActor)
	if err != nil {
		return fmt.Errorf("running calibration: %w", err)
	}

	for _, r := range results {
		log.Info("tool calibrated",
			"tool", r.ToolType,
			"previous_weight", r.PreviousWeight,
			"new_weight", r.NewWeight,
			"data_points", r.DataPoints,
		)
	}

	log.Info("calibration complete", "tools", len(results))
	return nil
}
