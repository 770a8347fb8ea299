package worker

import (
	"context"
	"sync"
	"time"

	"github.com/pehenyshka/piratecards/internal/daily"
	"github.com/pehenyshka/piratecards/internal/logger"
)

// NightlySweepWorker clears unclaimed daily bonuses at 00:00 UTC.
// Bonuses are use-them-or-lose-them: a rarity boost or extra draw
// claimed yesterday must not survive into today.
type NightlySweepWorker struct {
	dailyService daily.Service
	timer        *time.Timer
	shutdown     chan struct{}
	wg           sync.WaitGroup
	mu           sync.Mutex
}

// NewNightlySweepWorker creates a new NightlySweepWorker
func NewNightlySweepWorker(dailyService daily.Service) *NightlySweepWorker {
	return &NightlySweepWorker{
		dailyService: dailyService,
		shutdown:     make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first sweep
func (w *NightlySweepWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next midnight UTC and schedules the sweep
func (w *NightlySweepWorker) scheduleNext() {
	duration := timeUntilNextSweep(time.Now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > 1*time.Hour {
		// Stage 1: Long-range (Standby). Wake up 45 minutes before the sweep.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgSweepStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: Final approach. Schedule the actual sweep.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early (jitter > 10s),
		// simply reschedule for the remaining time.
		// If the remaining time is > 23h, we are on time or slightly late.
		rem := timeUntilNextSweep(time.Now())
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeSweep()
		w.scheduleNext() // This will now calculate ~24h and jump back to Stage 1
	})
	w.mu.Unlock()

	nextSweep := time.Now().UTC().Add(duration)
	log.Info(LogMsgSweepApproach, "next_sweep_at", nextSweep)
}

// executeSweep performs the sweep in a tracked goroutine
func (w *NightlySweepWorker) executeSweep() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgSweepStarting)

		usersAffected, err := w.dailyService.NightlySweep(ctx, time.Now())
		if err != nil {
			log.Error(LogMsgSweepFailed, "error", err)
			return
		}

		log.Info(LogMsgSweepCompleted, "users_affected", usersAffected)
	}()
}

// Shutdown gracefully shuts down the nightly sweep worker.
// Cancels the pending timer and waits for any in-flight sweep to complete.
func (w *NightlySweepWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down nightly sweep worker")

	// Signal shutdown to timer callback (safe to close once)
	select {
	case <-w.shutdown:
		// Already closed, nothing to do
	default:
		close(w.shutdown)
	}

	// Cancel pending timer
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending nightly sweep")
	}
	w.mu.Unlock()

	// Wait for any in-flight sweep to complete
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Nightly sweep worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Nightly sweep worker shutdown timeout, a sweep may still be running")
		return ctx.Err()
	}
}

// timeUntilNextSweep calculates the duration until the next 00:00 UTC
func timeUntilNextSweep(now time.Time) time.Duration {
	now = now.UTC()
	nextSweep := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, time.UTC,
	)
	if !nextSweep.After(now) {
		nextSweep = nextSweep.AddDate(0, 0, 1)
	}
	return nextSweep.Sub(now)
}
