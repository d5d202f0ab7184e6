package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/utils/errutil"
)

// env is shared by all use cases of one UseCases
type env struct {
	now     func() time.Time
	latency time.Duration
	metrics *Metrics
}

// pause simulates a network round trip of d, returning early when ctx ends
func (e *env) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "request abandoned")
	}
}

// respond runs fn after the simulated latency and wraps its outcome into an
// envelope. Errors and panics never escape.
func respond[T any](ctx context.Context, e *env, operation, action string, latency time.Duration, fn func(ctx context.Context) (T, error)) (resp *model.Envelope[T]) {
	defer func() {
		if r := recover(); r != nil {
			err := goerr.New(fmt.Sprintf("panic: %v", r), goerr.V("operation", operation))
			resp = failure[T](ctx, e, err, action)
		}
		e.metrics.observeRequest(operation, resp.Success)
	}()

	if err := e.pause(ctx, latency); err != nil {
		return failure[T](ctx, e, err, action)
	}

	data, err := fn(ctx)
	if err != nil {
		return failure[T](ctx, e, err, action)
	}
	return model.Succeed(data, e.now())
}

// failure converts err to a failed envelope. Unexpected errors are logged and
// reported; expected ones are not.
func failure[T any](ctx context.Context, e *env, err error, action string) *model.Envelope[T] {
	now := e.now()

	switch {
	case errors.Is(err, ErrRiskNotFound):
		return model.Fail[T](model.ReasonNotFound, msgRiskNotFound, now)

	case errors.Is(err, ErrInvalidFilters), errors.Is(err, ErrInvalidPatch):
		return model.Fail[T](model.ReasonInvalidArgument, err.Error(), now)

	default:
		_ = errutil.Handle(ctx, err, "facade operation failed")
		return model.Fail[T](model.ReasonTransient, "An error occurred while "+action, now)
	}
}

// getRisk loads one risk, translating a missing record to ErrRiskNotFound
func getRisk(ctx context.Context, repo interfaces.RiskRepository, id string) (*model.ComponentRisk, error) {
	risk, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V(RiskIDKey, id))
	}
	return risk, nil
}
