package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Daymon_Go/internal/event"
	"github.com/osse101/Daymon_Go/internal/scheduler"
	"github.com/osse101/Daymon_Go/internal/server"
	"github.com/osse101/Daymon_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	SaveWorker         *worker.SaveWorker
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (no new periodic jobs)
// 3. Save worker (final flush of every dirty player)
// 4. Worker pool (finish queued jobs)
// 5. Event publisher (flush pending events)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.SaveWorker != nil {
		if err := components.SaveWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSaveWorkerShutdownFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
