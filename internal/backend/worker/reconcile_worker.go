package worker

import (
	"context"
	"time"

	"github.com/amilz/tap-cash/internal/pkg/logging"
)

// Reconciler hands out one stranded saga at a time.
type Reconciler interface {
	ReconcileNext(ctx context.Context) (bool, error)
}

// ReconcileWorker polls for sagas whose deposit settled but whose transfer
// did not, and re-runs their send leg. Several workers can poll the same
// database; the claim query keeps them off each other's sagas.
type ReconcileWorker struct {
	reconciler Reconciler
	interval   time.Duration
	logger     logging.Logger
}

func NewReconcileWorker(reconciler Reconciler, interval time.Duration, logger logging.Logger) *ReconcileWorker {
	return &ReconcileWorker{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

// Run blocks until the context is cancelled. Each tick drains every due saga
// before going back to sleep.
func (w *ReconcileWorker) Run(ctx context.Context) error {
	w.logger.Info("reconcile worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reconcile worker stopped")
			return nil
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *ReconcileWorker) drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		claimed, err := w.reconciler.ReconcileNext(ctx)
		if err != nil {
			w.logger.Error("failed to reconcile saga", "error", err.Error())
			return
		}

		if !claimed {
			return
		}
	}
}
