package model_test

import (
	"time"

	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

var testNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func testToday() types.Date {
	return types.DateOf(testNow)
}

func newRisk(id string, severity types.Severity, score int, startInDays int) *model.ComponentRisk {
	today := testToday()
	return &model.ComponentRisk{
		ID:                  id,
		ComponentID:         "CMP-" + id,
		ComponentName:       "Component " + id,
		SupplierID:          "SUP001",
		SupplierName:        "Acme Electronics",
		PlantID:             "PLT001",
		PlantName:           "Austin Assembly",
		DaysOfSupply:        5,
		DemandPerDay:        100,
		CurrentStock:        500,
		DisruptionStartDate: today.AddDays(startInDays),
		DisruptionEndDate:   today.AddDays(startInDays + 7),
		Severity:            severity,
		RootCauseCategory:   types.RootCauseCapacity,
		RootCauseSummary:    "capacity constrained",
		MitigationStatus:    types.MitigationStatusNone,
		RiskScore:           score,
		Trend:               types.TrendStable,
		LastUpdated:         today,
	}
}

// tenRisks has three CRITICAL risks among ten
func tenRisks() []*model.ComponentRisk {
	return []*model.ComponentRisk{
		newRisk("R01", types.SeverityCritical, 92, 2),
		newRisk("R02", types.SeverityCritical, 88, 5),
		newRisk("R03", types.SeverityHigh, 75, 7),
		newRisk("R04", types.SeverityHigh, 72, 4),
		newRisk("R05", types.SeverityMedium, 58, 10),
		newRisk("R06", types.SeverityMedium, 52, 8),
		newRisk("R07", types.SeverityHigh, 78, 3),
		newRisk("R08", types.SeverityLow, 32, 14),
		newRisk("R09", types.SeverityCritical, 95, 1),
		newRisk("R10", types.SeverityLow, 25, 18),
	}
}

func ids(risks []*model.ComponentRisk) []string {
	out := make([]string, len(risks))
	for i, r := range risks {
		out[i] = r.ID
	}
	return out
}
