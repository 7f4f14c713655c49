package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sells-group/learning-loop/api/openapi"
	"github.com/sells-group/learning-loop/internal/api/handlers"
	"github.com/sells-group/learning-loop/internal/api/middleware"
	"github.com/sells-group/learning-loop/internal/config"
	"github.com/sells-group/learning-loop/internal/engine"
	"github.com/sells-group/learning-loop/internal/notify"
	"github.com/sells-group/learning-loop/internal/research"
	"github.com/sells-group/learning-loop/internal/store"
	"github.com/sells-group/learning-loop/internal/telemetry"
	"github.com/sells-group/learning-loop/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
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

	ctx := context.Background()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, "learning-loop", Version, cfg.Telemetry.Endpoint)
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				log.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	notifier := buildNotifier(cfg, log)

	eng := engine.NewEngine(
		st,
		research.NewStoreProvider(st),
		notifier,
		engine.WithLogger(log),
		engine.WithLookbackDays(cfg.Engine.LookbackDays),
		engine.WithSweepWindowDays(cfg.Engine.SweepWindowDays),
		engine.WithSweepParallelism(cfg.Engine.SweepParallelism),
	)

	sched, err := engine.NewScheduler(
		eng,
		st,
		cfg.Schedule.CalibrationInterval,
		cfg.Schedule.SweepInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	sched.RecoverStaleJobRuns(ctx)
	sched.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	if cfg.Telemetry.Enabled {
		e.Use(middleware.Tracing())
	}

	// Rate limiting applies only to event ingestion; reads are unthrottled.
	rl := middleware.NewRateLimiter(cfg.Server.RateLimit.PerSecond, cfg.Server.RateLimit.Burst)
	e.Use(rl.Middleware("/api/v1/events"))

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("Learning Loop API", Version))
	handlers.RegisterEventRoutes(api, handlers.NewEventsHandler(eng))
	handlers.RegisterOutcomeRoutes(api, handlers.NewOutcomesHandler(st, eng))
	handlers.RegisterEffectivenessRoutes(api, handlers.NewEffectivenessHandler(st))
	handlers.RegisterAnomalyRoutes(api, handlers.NewAnomaliesHandler(st, eng))
	handlers.RegisterCalibrationRoutes(api, handlers.NewCalibrationHandler(eng, st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterResearchRoutes(api, handlers.NewResearchHandler(st))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	// Let in-flight scheduled jobs drain before closing the store.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler did not stop before timeout")
	}

	log.Info("server stopped")
	return nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	switch {
	case cfg.Notifications.Discord.Enabled:
		log.Info("anomaly notifications via discord")
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	case cfg.Notifications.Webhook.Enabled:
		log.Info("anomaly notifications via webhook", "url", cfg.Notifications.Webhook.URL)
		return notify.NewWebhookNotifier(cfg.Notifications.Webhook.URL, cfg.Notifications.Webhook.Headers)
	default:
		return notify.NewNoOpNotifier(log)
	}
}
