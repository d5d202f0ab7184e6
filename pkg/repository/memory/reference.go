package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/model"
)

type referenceRepository struct {
	mu        sync.RWMutex
	suppliers []*model.Supplier
	plants    []*model.Plant
}

func newReferenceRepository() *referenceRepository {
	return &referenceRepository{}
}

func (r *referenceRepository) ListSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]*model.Supplier, len(r.suppliers))
	for i, s := range r.suppliers {
		copied := *s
		suppliers[i] = &copied
	}
	return suppliers, nil
}

func (r *referenceRepository) ListPlants(ctx context.Context) ([]*model.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plants := make([]*model.Plant, len(r.plants))
	for i, p := range r.plants {
		copied := *p
		plants[i] = &copied
	}
	return plants, nil
}

func (r *referenceRepository) Replace(ctx context.Context, suppliers []*model.Supplier, plants []*model.Plant) error {
	nextSuppliers := make([]*model.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if s == nil || s.ID == "" {
			return goerr.New("supplier ID is required")
		}
		copied := *s
		nextSuppliers = append(nextSuppliers, &copied)
	}

	nextPlants := make([]*model.Plant, 0, len(plants))
	for _, p := range plants {
		if p == nil || p.ID == "" {
			return goerr.New("plant ID is required")
		}
		copied := *p
		nextPlants = append(nextPlants, &copied)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.suppliers = nextSuppliers
	r.plants = nextPlants
	return nil
}
