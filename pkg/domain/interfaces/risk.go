package interfaces

import (
	"context"

	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// MergeFunc decides what is stored when a replacement set carries a risk that
// already exists. It receives copies and returns the risk to keep.
type MergeFunc func(current, incoming *model.ComponentRisk) *model.ComponentRisk

type RiskRepository interface {
	// List retrieves all risks in insertion order
	List(ctx context.Context) ([]*model.ComponentRisk, error)

	// Get retrieves a risk by ID
	Get(ctx context.Context, id string) (*model.ComponentRisk, error)

	// Put inserts or overwrites a risk
	Put(ctx context.Context, risk *model.ComponentRisk) error

	// Patch applies a field-level update and returns the updated risk
	Patch(ctx context.Context, id string, patch model.RiskPatch, today types.Date) (*model.ComponentRisk, error)

	// ReplaceAll swaps the whole risk set in one step. merge may be nil, in
	// which case incoming risks overwrite existing ones.
	ReplaceAll(ctx context.Context, risks []*model.ComponentRisk, merge MergeFunc) error
}
