package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	risk      *riskRepository
	reference *referenceRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		risk:      newRiskRepository(),
		reference: newReferenceRepository(),
	}
}

// NewWithSeed creates a repository pre-loaded with seed
func NewWithSeed(ctx context.Context, seed *model.Seed) (*Memory, error) {
	m := New()
	if err := m.Load(ctx, seed); err != nil {
		return nil, err
	}
	return m, nil
}

// Load replaces all stored data with seed
func (m *Memory) Load(ctx context.Context, seed *model.Seed) error {
	if seed == nil {
		return goerr.New("seed is required")
	}
	if err := m.risk.ReplaceAll(ctx, seed.Risks, nil); err != nil {
		return goerr.Wrap(err, "failed to load risks")
	}
	if err := m.reference.Replace(ctx, seed.Suppliers, seed.Plants); err != nil {
		return goerr.Wrap(err, "failed to load reference data")
	}
	return nil
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Reference() interfaces.ReferenceRepository {
	return m.reference
}
