package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// ComponentRisk is a component or material exposed to a supply disruption
type ComponentRisk struct {
	ID            string `json:"id"`
	ComponentID   string `json:"componentId"`
	ComponentName string `json:"componentName"`

	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	PlantID      string `json:"plantId"`
	PlantName    string `json:"plantName"`

	// DaysOfSupply is current stock divided by daily demand
	DaysOfSupply float64 `json:"daysOfSupply"`
	DemandPerDay int64   `json:"demandPerDay"`
	CurrentStock int64   `json:"currentStock"`

	DisruptionStartDate types.Date `json:"disruptionStartDate"`
	DisruptionEndDate   types.Date `json:"disruptionEndDate"`

	Severity          types.Severity          `json:"severity"`
	RootCauseCategory types.RootCauseCategory `json:"rootCauseCategory"`
	RootCauseSummary  string                  `json:"rootCauseSummary"`

	MitigationStatus   types.MitigationStatus `json:"mitigationStatus"`
	ActiveMitigationID string                 `json:"activeMitigationId,omitempty"`

	RiskScore   int         `json:"riskScore"`
	Trend       types.Trend `json:"trend"`
	LastUpdated types.Date  `json:"lastUpdated"`
}

// Copy returns a snapshot of the risk that shares no state with r
func (r *ComponentRisk) Copy() *ComponentRisk {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Validate checks enum membership, value ranges and the disruption window
func (r *ComponentRisk) Validate() error {
	if r.ID == "" {
		return goerr.Wrap(ErrInvalidRisk, "risk ID is required")
	}
	if r.ComponentID == "" {
		return goerr.Wrap(ErrInvalidRisk, "component ID is required", goerr.V(RiskIDKey, r.ID))
	}
	if !r.Severity.IsValid() {
		return goerr.Wrap(ErrInvalidRisk, "invalid severity", goerr.V(RiskIDKey, r.ID), goerr.V("severity", r.Severity))
	}
	if !r.RootCauseCategory.IsValid() {
		return goerr.Wrap(ErrInvalidRisk, "invalid root cause category", goerr.V(RiskIDKey, r.ID), goerr.V("category", r.RootCauseCategory))
	}
	if !r.MitigationStatus.IsValid() {
		return goerr.Wrap(ErrInvalidRisk, "invalid mitigation status", goerr.V(RiskIDKey, r.ID), goerr.V("status", r.MitigationStatus))
	}
	if !r.Trend.IsValid() {
		return goerr.Wrap(ErrInvalidRisk, "invalid trend", goerr.V(RiskIDKey, r.ID), goerr.V("trend", r.Trend))
	}
	if r.RiskScore < 0 || r.RiskScore > 100 {
		return goerr.Wrap(ErrInvalidRisk, "risk score must be between 0 and 100", goerr.V(RiskIDKey, r.ID), goerr.V("score", r.RiskScore))
	}
	if r.DaysOfSupply < 0 {
		return goerr.Wrap(ErrInvalidRisk, "days of supply must not be negative", goerr.V(RiskIDKey, r.ID))
	}
	if r.DemandPerDay <= 0 {
		return goerr.Wrap(ErrInvalidRisk, "demand per day must be positive", goerr.V(RiskIDKey, r.ID))
	}
	if r.CurrentStock < 0 {
		return goerr.Wrap(ErrInvalidRisk, "current stock must not be negative", goerr.V(RiskIDKey, r.ID))
	}
	if r.DisruptionStartDate.IsZero() || r.DisruptionEndDate.IsZero() {
		return goerr.Wrap(ErrInvalidRisk, "disruption window is required", goerr.V(RiskIDKey, r.ID))
	}
	if r.DisruptionEndDate.Before(r.DisruptionStartDate) {
		return goerr.Wrap(ErrInvalidRisk, "disruption end precedes start",
			goerr.V(RiskIDKey, r.ID),
			goerr.V("start", r.DisruptionStartDate.String()),
			goerr.V("end", r.DisruptionEndDate.String()))
	}
	return nil
}

// DaysOfSupplyFor derives days of supply from stock and daily demand
func DaysOfSupplyFor(stock, demandPerDay int64) float64 {
	if demandPerDay <= 0 {
		return 0
	}
	return float64(stock) / float64(demandPerDay)
}

// RiskPatch is a field-level update of a ComponentRisk. Nil fields are left
// untouched.
type RiskPatch struct {
	MitigationStatus   *types.MitigationStatus `json:"mitigationStatus,omitempty" validate:"omitempty,mitigation_status"`
	ActiveMitigationID *string                 `json:"activeMitigationId,omitempty" validate:"omitempty,max=64"`
	RiskScore          *int                    `json:"riskScore,omitempty" validate:"omitempty,min=0,max=100"`
	Trend              *types.Trend            `json:"trend,omitempty" validate:"omitempty,trend"`
	Severity           *types.Severity         `json:"severity,omitempty" validate:"omitempty,severity"`
}

// IsEmpty reports whether the patch changes nothing
func (p *RiskPatch) IsEmpty() bool {
	return p.MitigationStatus == nil &&
		p.ActiveMitigationID == nil &&
		p.RiskScore == nil &&
		p.Trend == nil &&
		p.Severity == nil
}

// Validate checks the patched values
func (p *RiskPatch) Validate() error {
	if err := validate.Struct(p); err != nil {
		return goerr.Wrap(ErrInvalidPatch, err.Error())
	}
	return nil
}

// Apply writes the patch onto r and stamps LastUpdated with today
func (p *RiskPatch) Apply(r *ComponentRisk, today types.Date) {
	if p.MitigationStatus != nil {
		r.MitigationStatus = *p.MitigationStatus
	}
	if p.ActiveMitigationID != nil {
		r.ActiveMitigationID = *p.ActiveMitigationID
	}
	if p.RiskScore != nil {
		r.RiskScore = *p.RiskScore
	}
	if p.Trend != nil {
		r.Trend = *p.Trend
	}
	if p.Severity != nil {
		r.Severity = *p.Severity
	}
	r.LastUpdated = today
}
