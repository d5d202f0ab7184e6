package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// MitigationOption is a candidate corrective action for one component risk
type MitigationOption struct {
	ID                          string               `json:"id"`
	ComponentRiskID             string               `json:"componentRiskId"`
	Title                       string               `json:"title"`
	Description                 string               `json:"description"`
	DetailedDescription         string               `json:"detailedDescription,omitempty"`
	IsRecommended               bool                 `json:"isRecommended"`
	EstimatedLeadTimeImpactDays int                  `json:"estimatedLeadTimeImpactDays"`
	EstimatedCostImpact         types.CostImpact     `json:"estimatedCostImpact"`
	ConfidenceScore             int                  `json:"confidenceScore"`
	Type                        types.MitigationType `json:"type"`
	Prerequisites               []string             `json:"prerequisites,omitempty"`
	Risks                       []string             `json:"risks,omitempty"`
	ExpectedOutcome             string               `json:"expectedOutcome,omitempty"`
}

// Copy returns a deep copy of the option
func (o *MitigationOption) Copy() *MitigationOption {
	if o == nil {
		return nil
	}
	c := *o
	c.Prerequisites = slices.Clone(o.Prerequisites)
	c.Risks = slices.Clone(o.Risks)
	return &c
}

// MitigationExecutionResult is the outcome of one execution attempt. It is
// never modified after construction.
type MitigationExecutionResult struct {
	Success                 bool       `json:"success"`
	MitigationID            string     `json:"mitigationId"`
	ComponentRiskID         string     `json:"componentRiskId"`
	Message                 string     `json:"message"`
	Timestamp               time.Time  `json:"timestamp"`
	ReferenceNumber         string     `json:"referenceNumber,omitempty"`
	EstimatedCompletionDate *time.Time `json:"estimatedCompletionDate,omitempty"`
}

// RiskStatusDelta is the state change a successful execution asks for. The
// caller decides whether and when to apply it.
type RiskStatusDelta struct {
	ComponentRiskID    string                 `json:"componentRiskId"`
	MitigationStatus   types.MitigationStatus `json:"mitigationStatus"`
	ActiveMitigationID string                 `json:"activeMitigationId"`
}

// Patch converts the delta to a field-level repository update
func (d *RiskStatusDelta) Patch() RiskPatch {
	status := d.MitigationStatus
	mitigationID := d.ActiveMitigationID
	return RiskPatch{
		MitigationStatus:   &status,
		ActiveMitigationID: &mitigationID,
	}
}
