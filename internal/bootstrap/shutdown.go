package bootstrap

import (
	"context"
	"log/slog"

	"github.com/pehenyshka/piratecards/internal/scheduler"
	"github.com/pehenyshka/piratecards/internal/server"
	"github.com/pehenyshka/piratecards/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	SweepWorker *worker.NightlySweepWorker
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Nightly sweep worker (cancel the pending timer, drain in-flight sweeps)
// 3. Scheduler (stop feeding the pool)
// 4. Worker pool (drain queued jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.SweepWorker != nil {
		if err := components.SweepWorker.Shutdown(ctx); err != nil {
			slog.Error("Nightly sweep worker shutdown failed", "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
