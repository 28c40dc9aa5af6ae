// Package purge runs the retention sweep on a schedule.
package purge

import (
	"context"
	"log/slog"
	"time"

	usecase "github.com/moneybook/backend/internal/application/usecase/purge"
)

// Worker drives the retention sweep on a fixed interval.
type Worker struct {
	sweep     *usecase.SweepUseCase
	retention time.Duration
	interval  time.Duration
}

// WorkerConfig holds configuration for the purge worker.
type WorkerConfig struct {
	Retention time.Duration
	Interval  time.Duration
}

// DefaultWorkerConfig returns the default worker configuration: a 30-day
// retention window swept daily.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Retention: 30 * 24 * time.Hour,
		Interval:  24 * time.Hour,
	}
}

// NewWorker creates a new purge worker.
func NewWorker(sweep *usecase.SweepUseCase, config WorkerConfig) *Worker {
	return &Worker{
		sweep:     sweep,
		retention: config.Retention,
		interval:  config.Interval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
// The sweep itself is re-entrant, so an interrupted run is simply picked up
// by the next tick.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Purge worker started",
		"retention", w.retention,
		"interval", w.interval,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Sweep immediately on start, then on ticker.
	w.runSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Purge worker shutting down")
			return
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

// runSweep executes one sweep and logs the outcome.
func (w *Worker) runSweep(ctx context.Context) {
	out, err := w.sweep.Execute(ctx, usecase.SweepInput{Retention: w.retention})
	if err != nil {
		slog.Error("Purge sweep failed", "error", err)
		return
	}
	if out.PurgedBooks > 0 || out.PurgedUsers > 0 {
		slog.Info("Purge sweep completed",
			"purged_books", out.PurgedBooks,
			"purged_users", out.PurgedUsers,
		)
	}
}
