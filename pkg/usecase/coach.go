package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/service/catalog"
	"github.com/secmon-lab/controltower/pkg/service/narrative"
)

type CoachUseCase struct {
	repo interfaces.Repository
	env  *env
}

func NewCoachUseCase(repo interfaces.Repository, e *env) *CoachUseCase {
	return &CoachUseCase{
		repo: repo,
		env:  e,
	}
}

// GetCoachData assembles the coach panel of one risk. It is recomputed on
// every call.
func (uc *CoachUseCase) GetCoachData(ctx context.Context, componentRiskID string) *model.Envelope[*model.CoachPanelData] {
	return respond(ctx, uc.env, "get_coach_data", "fetching coach data", uc.env.latency,
		func(ctx context.Context) (*model.CoachPanelData, error) {
			risk, err := getRisk(ctx, uc.repo.Risk(), componentRiskID)
			if err != nil {
				return nil, err
			}

			peers, err := uc.repo.Risk().List(ctx)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list peer risks", goerr.V(RiskIDKey, componentRiskID))
			}

			return &model.CoachPanelData{
				ComponentRisk:      risk,
				RootCauseNarrative: narrative.Narrative(risk),
				ImpactSummary:      narrative.ImpactSummary(risk, uc.env.now()),
				MitigationOptions:  catalog.OptionsFor(risk),
				AdditionalInsights: narrative.Insights(risk, peers),
			}, nil
		})
}
