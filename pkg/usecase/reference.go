package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
)

type ReferenceUseCase struct {
	repo interfaces.Repository
	env  *env
}

func NewReferenceUseCase(repo interfaces.Repository, e *env) *ReferenceUseCase {
	return &ReferenceUseCase{
		repo: repo,
		env:  e,
	}
}

func (uc *ReferenceUseCase) ListSuppliers(ctx context.Context) *model.Envelope[[]*model.Supplier] {
	return respond(ctx, uc.env, "list_suppliers", "fetching suppliers", uc.env.latency/2,
		func(ctx context.Context) ([]*model.Supplier, error) {
			suppliers, err := uc.repo.Reference().ListSuppliers(ctx)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list suppliers")
			}
			return suppliers, nil
		})
}

func (uc *ReferenceUseCase) ListPlants(ctx context.Context) *model.Envelope[[]*model.Plant] {
	return respond(ctx, uc.env, "list_plants", "fetching plants", uc.env.latency/2,
		func(ctx context.Context) ([]*model.Plant, error) {
			plants, err := uc.repo.Reference().ListPlants(ctx)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list plants")
			}
			return plants, nil
		})
}
