package config

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/service/executor"
	"github.com/secmon-lab/controltower/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Simulation holds the timing and outcome settings of the simulated backend
type Simulation struct {
	latency        time.Duration
	executionDelay time.Duration
	successRate    float64
	randomSeed     uint64
}

func (x *Simulation) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "latency",
			Usage:       "Simulated base latency of data operations (0 disables)",
			Category:    "Simulation",
			Value:       usecase.DefaultLatency,
			Sources:     cli.EnvVars("CONTROLTOWER_LATENCY"),
			Destination: &x.latency,
		},
		&cli.DurationFlag{
			Name:        "execution-delay",
			Usage:       "Simulated duration of a mitigation execution",
			Category:    "Simulation",
			Value:       executor.DefaultDelay,
			Sources:     cli.EnvVars("CONTROLTOWER_EXECUTION_DELAY"),
			Destination: &x.executionDelay,
		},
		&cli.FloatFlag{
			Name:        "success-rate",
			Usage:       "Probability that a mitigation execution succeeds (0.0 to 1.0)",
			Category:    "Simulation",
			Value:       executor.DefaultSuccessRate,
			Sources:     cli.EnvVars("CONTROLTOWER_SUCCESS_RATE"),
			Destination: &x.successRate,
		},
		&cli.Uint64Flag{
			Name:        "random-seed",
			Usage:       "Seed of execution outcomes for reproducible runs (0 picks a random seed)",
			Category:    "Simulation",
			Sources:     cli.EnvVars("CONTROLTOWER_RANDOM_SEED"),
			Destination: &x.randomSeed,
		},
	}
}

func (x Simulation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("latency", x.latency),
		slog.Duration("execution_delay", x.executionDelay),
		slog.Float64("success_rate", x.successRate),
		slog.Uint64("random_seed", x.randomSeed),
	)
}

// Latency returns the simulated base latency
func (x *Simulation) Latency() time.Duration {
	return x.latency
}

// Configure builds the mitigation executor
func (x *Simulation) Configure(now func() time.Time) (*executor.Simulated, error) {
	if x.latency < 0 || x.executionDelay < 0 {
		return nil, goerr.Wrap(ErrInvalidSimulation, "durations must not be negative",
			goerr.V("latency", x.latency), goerr.V("execution_delay", x.executionDelay))
	}
	if x.successRate < 0 || x.successRate > 1 {
		return nil, goerr.Wrap(ErrInvalidSimulation, "success rate must be between 0 and 1",
			goerr.V("success_rate", x.successRate))
	}

	var rng *rand.Rand
	if x.randomSeed != 0 {
		rng = rand.New(rand.NewPCG(x.randomSeed, x.randomSeed))
	}

	return executor.New(
		executor.WithDelay(x.executionDelay),
		executor.WithClock(now),
		executor.WithDecider(executor.Probabilistic(x.successRate, rng)),
	), nil
}
