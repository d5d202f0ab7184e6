package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

type riskRepository struct {
	mu    sync.RWMutex
	risks map[string]*model.ComponentRisk
	order []string
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks: make(map[string]*model.ComponentRisk),
	}
}

func (r *riskRepository) List(ctx context.Context) ([]*model.ComponentRisk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.ComponentRisk, 0, len(r.order))
	for _, id := range r.order {
		risks = append(risks, r.risks[id].Copy())
	}
	return risks, nil
}

func (r *riskRepository) Get(ctx context.Context, id string) (*model.ComponentRisk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V(model.RiskIDKey, id))
	}

	// Return a copy to prevent external modification
	return risk.Copy(), nil
}

func (r *riskRepository) Put(ctx context.Context, risk *model.ComponentRisk) error {
	if risk == nil {
		return goerr.New("risk is nil")
	}
	if err := risk.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.risks[risk.ID]; !exists {
		r.order = append(r.order, risk.ID)
	}
	r.risks[risk.ID] = risk.Copy()
	return nil
}

func (r *riskRepository) Patch(ctx context.Context, id string, patch model.RiskPatch, today types.Date) (*model.ComponentRisk, error) {
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(err, "rejected risk patch", goerr.V(model.RiskIDKey, id))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V(model.RiskIDKey, id))
	}

	updated := existing.Copy()
	patch.Apply(updated, today)
	r.risks[id] = updated

	return updated.Copy(), nil
}

func (r *riskRepository) ReplaceAll(ctx context.Context, risks []*model.ComponentRisk, merge interfaces.MergeFunc) error {
	next := make(map[string]*model.ComponentRisk, len(risks))
	order := make([]string, 0, len(risks))
	for _, risk := range risks {
		if risk == nil {
			return goerr.New("risk is nil")
		}
		if err := risk.Validate(); err != nil {
			return err
		}
		if _, dup := next[risk.ID]; dup {
			return goerr.Wrap(model.ErrInvalidRisk, "duplicated risk ID", goerr.V(model.RiskIDKey, risk.ID))
		}
		next[risk.ID] = risk.Copy()
		order = append(order, risk.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if merge != nil {
		for id, incoming := range next {
			if current, exists := r.risks[id]; exists {
				next[id] = merge(current.Copy(), incoming.Copy())
			}
		}
	}

	r.risks = next
	r.order = order
	return nil
}
