package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
)

// SeedLoader produces a fresh data set, e.g. by re-reading the seed file
type SeedLoader func(ctx context.Context) (*model.Seed, error)

// SeedRefreshWorker periodically reloads risks and reference data from a seed
// source into the repository. Mitigation state started at runtime survives a
// refresh.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type SeedRefreshWorker struct {
	repo     interfaces.Repository
	load     SeedLoader
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewSeedRefreshWorker creates a new worker for refreshing seed data
func NewSeedRefreshWorker(repo interfaces.Repository, load SeedLoader, interval time.Duration) *SeedRefreshWorker {
	return &SeedRefreshWorker{
		repo:     repo,
		load:     load,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop. The first refresh happens after
// one interval since the repository is seeded at startup.
func (w *SeedRefreshWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return goerr.New("refresh interval must be positive", goerr.V("interval", w.interval.String()))
	}

	logging.From(ctx).Info("seed refresh worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *SeedRefreshWorker) Stop() {
	w.stopOnce.Do(func() {
		logging.Default().Info("seed refresh worker stopping")
		close(w.stopCh)
	})
	<-w.doneCh
	logging.Default().Info("seed refresh worker stopped")
}

func (w *SeedRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				// Keep the current data and retry on the next tick
				logging.From(ctx).Error("seed refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.From(ctx).Info("seed refresh worker context cancelled")
			return
		}
	}
}

func (w *SeedRefreshWorker) refresh(ctx context.Context) error {
	startTime := time.Now()

	seed, err := w.load(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load seed")
	}

	if err := w.repo.Risk().ReplaceAll(ctx, seed.Risks, KeepMitigationState); err != nil {
		return goerr.Wrap(err, "failed to replace risks", goerr.V("count", len(seed.Risks)))
	}
	if err := w.repo.Reference().Replace(ctx, seed.Suppliers, seed.Plants); err != nil {
		return goerr.Wrap(err, "failed to replace reference data")
	}

	logging.From(ctx).Info("seed refresh completed",
		"risks", len(seed.Risks),
		"suppliers", len(seed.Suppliers),
		"plants", len(seed.Plants),
		"duration", time.Since(startTime).String())

	return nil
}

// KeepMitigationState keeps a planned or executing mitigation of the stored
// risk unless the incoming data already reports a terminal status for it
func KeepMitigationState(current, incoming *model.ComponentRisk) *model.ComponentRisk {
	if !current.MitigationStatus.IsActive() {
		return incoming
	}
	switch incoming.MitigationStatus {
	case types.MitigationStatusCompleted, types.MitigationStatusFailed:
		return incoming
	}

	incoming.MitigationStatus = current.MitigationStatus
	incoming.ActiveMitigationID = current.ActiveMitigationID
	if current.LastUpdated.After(incoming.LastUpdated) {
		incoming.LastUpdated = current.LastUpdated
	}
	return incoming
}
