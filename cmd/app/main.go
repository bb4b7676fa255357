package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/Daymon_Go/internal/auth"
	"github.com/osse101/Daymon_Go/internal/bootstrap"
	"github.com/osse101/Daymon_Go/internal/config"
	"github.com/osse101/Daymon_Go/internal/database"
	"github.com/osse101/Daymon_Go/internal/eventlog"
	"github.com/osse101/Daymon_Go/internal/game"
	"github.com/osse101/Daymon_Go/internal/scheduler"
	"github.com/osse101/Daymon_Go/internal/server"
	"github.com/osse101/Daymon_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobQueueSize    = 256
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	registry, err := bootstrap.LoadEggTypes(ctx, cfg, repos.Hatchery)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	eventLog := eventlog.NewService(repos.EventLog)
	bootstrap.RegisterEventHandlers(bus, eventLog)

	pool := worker.NewPool(cfg.Workers, jobQueueSize)
	pool.Start()

	// The saver flushes through the service, which is created with the saver
	var svc game.Service
	saver := worker.NewSaveWorker(worker.FlushFunc(func(ctx context.Context, userID string) error {
		return svc.Flush(ctx, userID)
	}), pool, cfg.SaveDebounce)

	svc = game.NewService(game.Config{
		Repo:          repos.Hatchery,
		Registry:      registry,
		Bus:           publisher,
		Saver:         saver,
		SessionTTL:    cfg.SessionTTL,
		SessionSize:   cfg.SessionCacheSize,
		DebugControls: cfg.DebugControls,
	})

	sched := scheduler.New(pool)
	sched.Schedule("egg_types_refresh", cfg.EggTypesRefresh, worker.JobFunc(svc.RefreshEggTypes))
	sched.Schedule("save_retry", cfg.FlushInterval, worker.JobFunc(func(ctx context.Context) error {
		if n := saver.RetryFailed(); n > 0 {
			slog.Info("Retrying failed saves", "count", n)
		}
		return nil
	}))
	sched.Schedule("event_log_cleanup", cfg.EventLogCleanup, eventlog.NewCleanupJob(eventLog, cfg.EventLogRetentionDays))

	sessions := auth.NewSessions(cfg.SessionCacheSize, cfg.SessionTTL)
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, svc, eventLog, sessions)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			Scheduler:          sched,
			SaveWorker:         saver,
			WorkerPool:         pool,
			ResilientPublisher: publisher,
		})
		return nil
	})

	return g.Wait()
}
