package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

type RiskUseCase struct {
	repo interfaces.Repository
	env  *env
}

func NewRiskUseCase(repo interfaces.Repository, e *env) *RiskUseCase {
	return &RiskUseCase{
		repo: repo,
		env:  e,
	}
}

// ListRisks returns risks matching filters, highest score first. Nil filters
// return everything.
func (uc *RiskUseCase) ListRisks(ctx context.Context, filters *model.RiskFilters) *model.Envelope[[]*model.ComponentRisk] {
	return respond(ctx, uc.env, "list_risks", "fetching component risks", uc.env.latency,
		func(ctx context.Context) ([]*model.ComponentRisk, error) {
			return uc.rankedRisks(ctx, filters)
		})
}

// GetRisk returns a single risk
func (uc *RiskUseCase) GetRisk(ctx context.Context, id string) *model.Envelope[*model.ComponentRisk] {
	return respond(ctx, uc.env, "get_risk", "fetching the component risk", uc.env.latency/2,
		func(ctx context.Context) (*model.ComponentRisk, error) {
			return getRisk(ctx, uc.repo.Risk(), id)
		})
}

// GetTimeline returns the disruption timeline of the risks matching filters.
// An empty selectedID selects the highest scoring risk.
func (uc *RiskUseCase) GetTimeline(ctx context.Context, filters *model.RiskFilters, selectedID string) *model.Envelope[*model.Timeline] {
	return respond(ctx, uc.env, "get_timeline", "building the timeline", uc.env.latency,
		func(ctx context.Context) (*model.Timeline, error) {
			ranked, err := uc.rankedRisks(ctx, filters)
			if err != nil {
				return nil, err
			}

			if selectedID == "" && len(ranked) > 0 {
				selectedID = ranked[0].ID
			}

			horizon := model.DefaultTimeHorizon
			if filters != nil && filters.TimeHorizon > 0 {
				horizon = filters.TimeHorizon
			}
			return model.BuildTimeline(ranked, selectedID, uc.env.now(), horizon), nil
		})
}

// UpdateRiskStatus applies a field-level update to a risk
func (uc *RiskUseCase) UpdateRiskStatus(ctx context.Context, id string, patch model.RiskPatch) *model.Envelope[*model.ComponentRisk] {
	return respond(ctx, uc.env, "update_risk", "updating the component risk", uc.env.latency/2,
		func(ctx context.Context) (*model.ComponentRisk, error) {
			return uc.patch(ctx, id, patch)
		})
}

func (uc *RiskUseCase) patch(ctx context.Context, id string, patch model.RiskPatch) (*model.ComponentRisk, error) {
	if patch.IsEmpty() {
		return nil, goerr.Wrap(ErrInvalidPatch, "patch has no fields", goerr.V(RiskIDKey, id))
	}
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidPatch, err.Error(), goerr.V(RiskIDKey, id))
	}

	updated, err := uc.repo.Risk().Patch(ctx, id, patch, types.DateOf(uc.env.now()))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V(RiskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to patch risk", goerr.V(RiskIDKey, id))
	}
	return updated, nil
}

func (uc *RiskUseCase) rankedRisks(ctx context.Context, filters *model.RiskFilters) ([]*model.ComponentRisk, error) {
	if filters != nil {
		if err := filters.Validate(); err != nil {
			return nil, goerr.Wrap(ErrInvalidFilters, err.Error())
		}
	}

	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}

	if filters != nil {
		risks = model.FilterRisks(risks, *filters, uc.env.now())
	}
	return model.RankByScore(risks), nil
}
