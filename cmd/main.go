package main

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

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/geocache"
	"adpilot/internal/adapter/meta"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/scheduler"
)

// main is the entry point of the adpilot scheduler. It loads configuration,
// optionally runs database migrations and the demo seed, wires the
// repositories, platform client and scheduler, then runs the scheduler and
// the ops HTTP server under a suture supervisor until a termination signal
// arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo tenant seeded", slog.String("tenant", db.DemoTenant))
	}

	// Validated by config.Load.
	loc, _ := cfg.Scheduler.Location()

	campaigns := postgres.NewCampaignRepository(pool)
	posts := postgres.NewPostRepository(pool)
	integrations := postgres.NewIntegrationRepository(pool)

	client := meta.NewClient(cfg.Meta, logger)

	var cache port.GeoCache
	switch cfg.GeoCache.Backend {
	case "redis":
		rc := geocache.NewRedis(cfg.GeoCache, logger)
		defer rc.Close()
		if err = rc.Ping(ctx); err != nil {
			// Lookups still work; every miss goes to the platform.
			logger.Warn("geo cache unreachable", slog.String("addr", cfg.GeoCache.RedisAddr), slog.Any("error", err))
		}
		cache = rc
	default:
		cache = geocache.NewMemory()
	}
	geo := meta.NewGeoResolver(client, cache, cfg.Meta.DefaultGeoKey)

	gate := usecase.NewBusinessHoursGate(loc, cfg.Scheduler.BusinessHoursStart, cfg.Scheduler.BusinessHoursEnd, time.Now)
	pipeline := usecase.NewPipeline(
		usecase.NewSynchronizer(campaigns, integrations, client, cfg.Scheduler.DatePresets, time.Now, logger),
		usecase.NewRunner(campaigns, posts, integrations, client, geo, gate, logger),
		usecase.NewRotationMonitor(campaigns, cfg.Scheduler, time.Now, logger),
		campaigns,
		logger,
	)
	sched := scheduler.New(pipeline, gate, cfg.Scheduler, loc, logger)

	handler := httpadapter.NewHandler(sched, campaigns, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	root := suture.New("adpilot", suture.Spec{
		EventHook: (&sutureslog.Handler{Logger: logger}).MustHook(),
		// Stopping the scheduler waits for the running tick.
		Timeout: cfg.Scheduler.TickTimeout + 10*time.Second,
	})
	root.Add(scheduler.NewService(sched))
	root.Add(httpadapter.NewServerService(srv, 5*time.Second))

	logger.Info("server listening",
		slog.Int("port", int(cfg.HTTP.Port)),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("timezone", loc.String()),
	)
	if err = root.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("supervisor error", slog.Any("error", err))
		return
	}
	if report, rerr := root.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, svc := range report {
			logger.Warn("service did not stop in time", slog.String("service", svc.Name))
		}
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}
