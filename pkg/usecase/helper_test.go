package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
	"github.com/secmon-lab/controltower/pkg/service/executor"
	"github.com/secmon-lab/controltower/pkg/usecase"
)

var testNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func today() types.Date { return types.DateOf(testNow) }

// newSeededRepo returns a repository holding the default demo data
func newSeededRepo(t *testing.T) *memory.Memory {
	t.Helper()
	repo, err := memory.NewWithSeed(context.Background(), memory.DefaultSeed(today()))
	gt.NoError(t, err).Required()
	return repo
}

func newUseCases(t *testing.T, repo *memory.Memory, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()
	base := []usecase.Option{
		usecase.WithClock(clock),
		usecase.WithLatency(0),
		usecase.WithExecutor(executor.New(
			executor.WithDelay(0),
			executor.WithClock(clock),
			executor.WithDecider(executor.AlwaysSucceed()),
		)),
	}
	return usecase.New(repo, append(base, opts...)...)
}

func riskIDs(risks []*model.ComponentRisk) []string {
	ids := make([]string, len(risks))
	for i, r := range risks {
		ids[i] = r.ID
	}
	return ids
}

func snapshot(t *testing.T, repo *memory.Memory) []*model.ComponentRisk {
	t.Helper()
	risks, err := repo.Risk().List(context.Background())
	gt.NoError(t, err).Required()
	return risks
}
