package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pehenyshka/piratecards/internal/bootstrap"
	"github.com/pehenyshka/piratecards/internal/catalog"
	"github.com/pehenyshka/piratecards/internal/config"
	"github.com/pehenyshka/piratecards/internal/daily"
	"github.com/pehenyshka/piratecards/internal/database"
	"github.com/pehenyshka/piratecards/internal/database/schema"
	"github.com/pehenyshka/piratecards/internal/drop"
	"github.com/pehenyshka/piratecards/internal/handler"
	"github.com/pehenyshka/piratecards/internal/ledger"
	"github.com/pehenyshka/piratecards/internal/metrics"
	"github.com/pehenyshka/piratecards/internal/rarity"
	"github.com/pehenyshka/piratecards/internal/scheduler"
	"github.com/pehenyshka/piratecards/internal/server"
	"github.com/pehenyshka/piratecards/internal/stats"
	"github.com/pehenyshka/piratecards/internal/utils"
	"github.com/pehenyshka/piratecards/internal/worker"
)

const (
	shutdownTimeout   = 30 * time.Second
	poolStatsInterval = 30 * time.Second
	workerPoolSize    = 2
	workerQueueSize   = 16
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	// Setup logging (stdout + rotating session files)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	// Connect to database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Initialize repositories
	repos := bootstrap.InitializeRepositories(dbPool)

	// Initialize services
	catalogService := catalog.NewService(repos.Card)
	ledgerService := ledger.NewService(repos.User)
	resolver := rarity.NewResolver(utils.RandomFloat)
	dropService := drop.NewService(ledgerService, resolver, catalogService, repos.Acquisition)
	dailyService := daily.NewService(ledgerService)
	statsService := stats.NewService(repos.Acquisition, ledgerService)

	// Seed the card catalog (no-op when cards already exist)
	slog.Info(bootstrap.LogMsgSeedingCatalog)
	if err := catalogService.Seed(ctx, schema.SeedCards()); err != nil {
		slog.Error(bootstrap.ErrMsgFailedSeedCatalog, "error", err)
		os.Exit(1)
	}

	// Request validation
	handler.InitValidator()

	// Background workers
	workerPool := worker.NewPool(workerPoolSize, workerQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(poolStatsInterval, &poolStatsJob{pool: dbPool})

	sweepWorker := worker.NewNightlySweepWorker(dailyService)
	sweepWorker.Start()

	// HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, dropService, dailyService, statsService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started", "port", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		SweepWorker: sweepWorker,
		Scheduler:   sched,
		WorkerPool:  workerPool,
	})
}

// poolStatsJob exports database pool statistics as Prometheus gauges.
type poolStatsJob struct {
	pool *pgxpool.Pool
}

func (j *poolStatsJob) Process(ctx context.Context) error {
	stat := j.pool.Stat()
	metrics.DBPoolTotalConns.Set(float64(stat.TotalConns()))
	metrics.DBPoolAcquiredConns.Set(float64(stat.AcquiredConns()))
	metrics.DBPoolIdleConns.Set(float64(stat.IdleConns()))
	return nil
}
