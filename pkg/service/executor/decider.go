package executor

import (
	"context"
	"math/rand/v2"
	"sync"
)

// Decider reports whether an execution attempt succeeds. An error means the
// attempt could not be made at all.
type Decider interface {
	Decide(ctx context.Context, req Request) (bool, error)
}

// DeciderFunc adapts a function to Decider
type DeciderFunc func(ctx context.Context, req Request) (bool, error)

func (f DeciderFunc) Decide(ctx context.Context, req Request) (bool, error) {
	return f(ctx, req)
}

// AlwaysSucceed returns a Decider that accepts every request
func AlwaysSucceed() Decider {
	return DeciderFunc(func(context.Context, Request) (bool, error) { return true, nil })
}

// AlwaysFail returns a Decider that rejects every request
func AlwaysFail() Decider {
	return DeciderFunc(func(context.Context, Request) (bool, error) { return false, nil })
}

// DefaultSuccessRate is the share of simulated executions that succeed
const DefaultSuccessRate = 0.9

type probabilistic struct {
	mu   sync.Mutex
	rate float64
	rng  *rand.Rand
}

// Probabilistic returns a Decider that succeeds with probability rate. It is a
// demo stand-in for a real side-effecting action. A nil rng is seeded
// randomly.
func Probabilistic(rate float64, rng *rand.Rand) Decider {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &probabilistic{rate: rate, rng: rng}
}

func (p *probabilistic) Decide(ctx context.Context, req Request) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < p.rate, nil
}
