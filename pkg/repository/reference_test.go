package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
)

func TestMemoryReferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	suppliers, err := repo.Reference().ListSuppliers(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, suppliers).Length(0)

	err = repo.Reference().Replace(ctx,
		[]*model.Supplier{{ID: "SUP001", Name: "Acme Electronics", Location: "Shenzhen, China"}},
		[]*model.Plant{{ID: "PLT001", Name: "Austin Assembly", Region: "North America"}},
	)
	gt.NoError(t, err).Required()

	suppliers, err = repo.Reference().ListSuppliers(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, suppliers).Length(1)
	suppliers[0].Name = "changed"

	again, err := repo.Reference().ListSuppliers(ctx)
	gt.NoError(t, err).Required()
	gt.V(t, again[0].Name).Equal("Acme Electronics")

	plants, err := repo.Reference().ListPlants(ctx)
	gt.NoError(t, err).Required()
	gt.V(t, plants[0].Region).Equal("North America")

	err = repo.Reference().Replace(ctx, []*model.Supplier{{Name: "no id"}}, nil)
	gt.Value(t, err).NotNil()
}

func TestDefaultSeed(t *testing.T) {
	ctx := context.Background()
	seed := memory.DefaultSeed(today)

	gt.A(t, seed.Suppliers).Length(6)
	gt.A(t, seed.Plants).Length(4)
	gt.A(t, seed.Risks).Length(10)

	for _, r := range seed.Risks {
		gt.NoError(t, r.Validate())
		gt.String(t, r.SupplierName).NotEqual("")
		gt.String(t, r.PlantName).NotEqual("")
	}

	first := seed.Risks[0]
	gt.V(t, first.ID).Equal("RISK001")
	gt.V(t, first.DisruptionStartDate).Equal(today.AddDays(2))
	gt.V(t, first.LastUpdated).Equal(today.AddDays(-1))

	repo, err := memory.NewWithSeed(ctx, seed)
	gt.NoError(t, err).Required()

	risk, err := repo.Risk().Get(ctx, "RISK009")
	gt.NoError(t, err).Required()
	gt.V(t, risk.RiskScore).Equal(95)
	gt.V(t, risk.SupplierName).Equal("GlobalTech Components")

	plants, err := repo.Reference().ListPlants(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, plants).Length(4)
}
