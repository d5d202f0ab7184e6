package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/service/catalog"
	"github.com/secmon-lab/controltower/pkg/service/executor"
	"github.com/secmon-lab/controltower/pkg/utils/async"
	"github.com/secmon-lab/controltower/pkg/utils/errutil"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
)

type MitigationUseCase struct {
	repo     interfaces.Repository
	env      *env
	executor executor.Executor
	notifier interfaces.Notifier

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewMitigationUseCase(repo interfaces.Repository, e *env, exec executor.Executor, notifier interfaces.Notifier) *MitigationUseCase {
	return &MitigationUseCase{
		repo:     repo,
		env:      e,
		executor: exec,
		notifier: notifier,
		inFlight: make(map[string]struct{}),
	}
}

// ListOptions returns the mitigation options of a risk. An unknown risk has
// no options.
func (uc *MitigationUseCase) ListOptions(ctx context.Context, componentRiskID string) *model.Envelope[[]*model.MitigationOption] {
	return respond(ctx, uc.env, "list_mitigation_options", "fetching mitigation options", uc.env.latency/2,
		func(ctx context.Context) ([]*model.MitigationOption, error) {
			risk, err := getRisk(ctx, uc.repo.Risk(), componentRiskID)
			if err != nil {
				if errors.Is(err, ErrRiskNotFound) {
					return []*model.MitigationOption{}, nil
				}
				return nil, err
			}
			return catalog.OptionsFor(risk), nil
		})
}

// Execute runs a mitigation for a risk and, when it succeeds, records the
// risk as executing it. A failure of any kind yields a failed result and
// leaves the stored risk untouched.
func (uc *MitigationUseCase) Execute(ctx context.Context, mitigationID, componentRiskID string) *model.Envelope[*model.MitigationExecutionResult] {
	started := time.Now()
	resp, outcome := uc.execute(ctx, mitigationID, componentRiskID)

	uc.env.metrics.executions.WithLabelValues(outcome).Inc()
	uc.env.metrics.executionDuration.Observe(time.Since(started).Seconds())
	uc.env.metrics.observeRequest("execute_mitigation", resp.Success)

	logging.From(ctx).Info("mitigation execution finished",
		RiskIDKey, componentRiskID,
		MitigationIDKey, mitigationID,
		"outcome", outcome)

	return resp
}

func (uc *MitigationUseCase) execute(ctx context.Context, mitigationID, componentRiskID string) (resp *model.Envelope[*model.MitigationExecutionResult], outcome string) {
	defer func() {
		if r := recover(); r != nil {
			err := goerr.New("panic in mitigation execution", goerr.V("panic", r), goerr.V(MitigationIDKey, mitigationID))
			_ = errutil.Handle(ctx, err, "mitigation execution panicked")
			resp, outcome = uc.rejected(mitigationID, componentRiskID, model.ReasonTransient, msgExecutionError), outcomeError
		}
	}()

	risk, err := getRisk(ctx, uc.repo.Risk(), componentRiskID)
	if err != nil {
		if errors.Is(err, ErrRiskNotFound) {
			return uc.rejected(mitigationID, componentRiskID, model.ReasonNotFound, msgRiskNotFound), outcomeRejected
		}
		_ = errutil.Handle(ctx, err, "failed to load risk for mitigation")
		return uc.rejected(mitigationID, componentRiskID, model.ReasonTransient, msgExecutionError), outcomeError
	}

	option := catalog.Find(risk, mitigationID)
	if option == nil {
		return uc.rejected(mitigationID, componentRiskID, model.ReasonInvalidArgument, msgUnknownMitigation), outcomeRejected
	}

	if !uc.acquire(componentRiskID) {
		return uc.rejected(mitigationID, componentRiskID, model.ReasonExecutionFailure, ErrMitigationInFlight.Error()), outcomeRejected
	}
	defer uc.release(componentRiskID)

	out, err := uc.executor.Execute(ctx, executor.Request{
		MitigationID: mitigationID,
		Risk:         risk,
	})
	if err != nil {
		_ = errutil.Handle(ctx, err, "mitigation execution failed")
		return uc.rejected(mitigationID, componentRiskID, model.ReasonTransient, msgExecutionError), outcomeError
	}

	result := out.Result
	if !result.Success || out.Delta == nil {
		resp = model.Fail[*model.MitigationExecutionResult](model.ReasonExecutionFailure, result.Message, uc.env.now())
		resp.Data = result
		return resp, outcomeFailed
	}

	updated, err := uc.repo.Risk().Patch(ctx, componentRiskID, out.Delta.Patch(), types.DateOf(uc.env.now()))
	if err != nil {
		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to record mitigation",
			goerr.V(RiskIDKey, componentRiskID),
			goerr.V(MitigationIDKey, mitigationID)), "mitigation state not recorded")
		return uc.rejected(mitigationID, componentRiskID, model.ReasonTransient, msgExecutionError), outcomeError
	}

	if uc.notifier != nil {
		async.Dispatch(ctx, "notify_mitigation", func(ctx context.Context) error {
			return uc.notifier.NotifyMitigation(ctx, updated, option, result)
		})
	}

	return model.Succeed(result, uc.env.now()), outcomeSucceeded
}

// rejected builds a failed envelope carrying a failed result
func (uc *MitigationUseCase) rejected(mitigationID, componentRiskID string, reason model.FailureReason, message string) *model.Envelope[*model.MitigationExecutionResult] {
	now := uc.env.now()
	resp := model.Fail[*model.MitigationExecutionResult](reason, message, now)
	resp.Data = &model.MitigationExecutionResult{
		Success:         false,
		MitigationID:    mitigationID,
		ComponentRiskID: componentRiskID,
		Message:         message,
		Timestamp:       now,
	}
	return resp
}

func (uc *MitigationUseCase) acquire(componentRiskID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inFlight[componentRiskID]; busy {
		return false
	}
	uc.inFlight[componentRiskID] = struct{}{}
	uc.env.metrics.inFlight.Inc()
	return true
}

func (uc *MitigationUseCase) release(componentRiskID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	delete(uc.inFlight, componentRiskID)
	uc.env.metrics.inFlight.Dec()
}
