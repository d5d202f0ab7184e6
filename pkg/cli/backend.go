package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/cli/config"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
	"github.com/secmon-lab/controltower/pkg/usecase"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// backend is the data and simulation setup shared by every command
type backend struct {
	repoCfg config.Repository
	simCfg  config.Simulation
	now     func() time.Time
}

func newBackend() *backend {
	return &backend{now: time.Now}
}

func (b *backend) flags() []cli.Flag {
	return append(b.repoCfg.Flags(), b.simCfg.Flags()...)
}

func (b *backend) build(ctx context.Context, opts ...usecase.Option) (*memory.Memory, *usecase.UseCases, error) {
	repo, err := b.repoCfg.Configure(ctx, b.now)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	exec, err := b.simCfg.Configure(b.now)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure simulation")
	}

	logging.From(ctx).Debug("Backend configured", "repository", b.repoCfg, "simulation", b.simCfg)

	base := []usecase.Option{
		usecase.WithClock(b.now),
		usecase.WithLatency(b.simCfg.Latency()),
		usecase.WithExecutor(exec),
	}
	return repo, usecase.New(repo, append(base, opts...)...), nil
}
