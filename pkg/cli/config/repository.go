package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
	"github.com/secmon-lab/controltower/pkg/service/worker"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for the risk data source
type Repository struct {
	seedFile        string
	refreshInterval time.Duration
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "TOML file with suppliers, plants and component risks (built-in demo data when empty)",
			Category:    "Repository",
			Sources:     cli.EnvVars("CONTROLTOWER_SEED_FILE"),
			Destination: &r.seedFile,
		},
		&cli.DurationFlag{
			Name:        "seed-refresh-interval",
			Usage:       "Reload the seed file at this interval (0 disables)",
			Category:    "Repository",
			Sources:     cli.EnvVars("CONTROLTOWER_SEED_REFRESH_INTERVAL"),
			Destination: &r.refreshInterval,
		},
	}
}

func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("seed_file", r.seedFile),
		slog.Duration("refresh_interval", r.refreshInterval),
	)
}

// RefreshInterval returns the seed reload interval, 0 when disabled
func (r *Repository) RefreshInterval() time.Duration {
	return r.refreshInterval
}

// Loader returns a function producing the configured seed relative to the
// current day
func (r *Repository) Loader(now func() time.Time) worker.SeedLoader {
	return func(ctx context.Context) (*model.Seed, error) {
		today := types.DateOf(now())
		if r.seedFile == "" {
			return memory.DefaultSeed(today), nil
		}
		return LoadSeedFile(r.seedFile, today)
	}
}

// Configure builds the in-memory repository populated with the seed
func (r *Repository) Configure(ctx context.Context, now func() time.Time) (*memory.Memory, error) {
	seed, err := r.Loader(now)(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load seed")
	}

	repo, err := memory.NewWithSeed(ctx, seed)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to populate repository", goerr.V(SeedPathKey, r.seedFile))
	}

	source := r.seedFile
	if source == "" {
		source = "built-in"
	}
	logging.From(ctx).Info("Repository loaded",
		"source", source,
		"risks", len(seed.Risks),
		"suppliers", len(seed.Suppliers),
		"plants", len(seed.Plants),
	)
	return repo, nil
}
