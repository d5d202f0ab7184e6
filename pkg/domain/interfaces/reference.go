package interfaces

import (
	"context"

	"github.com/secmon-lab/controltower/pkg/domain/model"
)

// ReferenceRepository holds supplier and plant master data
type ReferenceRepository interface {
	ListSuppliers(ctx context.Context) ([]*model.Supplier, error)
	ListPlants(ctx context.Context) ([]*model.Plant, error)

	// Replace swaps both sets at once
	Replace(ctx context.Context, suppliers []*model.Supplier, plants []*model.Plant) error
}
