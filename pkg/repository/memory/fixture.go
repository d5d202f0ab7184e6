package memory

import (
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// DefaultSeed returns the built-in demo data set. Disruption windows and
// update dates are relative to today so the timeline always looks current.
func DefaultSeed(today types.Date) *model.Seed {
	suppliers := []*model.Supplier{
		{ID: "SUP001", Name: "Acme Electronics", Location: "Shenzhen, China"},
		{ID: "SUP002", Name: "GlobalTech Components", Location: "Taipei, Taiwan"},
		{ID: "SUP003", Name: "EuroMetal GmbH", Location: "Munich, Germany"},
		{ID: "SUP004", Name: "Pacific Polymers", Location: "Seoul, South Korea"},
		{ID: "SUP005", Name: "Nordic Precision", Location: "Stockholm, Sweden"},
		{ID: "SUP006", Name: "Delta Manufacturing", Location: "Ho Chi Minh City, Vietnam"},
	}
	plants := []*model.Plant{
		{ID: "PLT001", Name: "Austin Assembly", Region: "North America"},
		{ID: "PLT002", Name: "Shanghai Production", Region: "Asia Pacific"},
		{ID: "PLT003", Name: "Berlin Manufacturing", Region: "Europe"},
		{ID: "PLT004", Name: "Mexico City Plant", Region: "Latin America"},
	}

	supplierName := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierName[s.ID] = s.Name
	}
	plantName := make(map[string]string, len(plants))
	for _, p := range plants {
		plantName[p.ID] = p.Name
	}

	type row struct {
		id, componentID, componentName string
		supplierID, plantID            string
		severity                       types.Severity
		daysOfSupply                   float64
		demandPerDay, currentStock     int64
		startIn, endIn                 int
		category                       types.RootCauseCategory
		summary                        string
		status                         types.MitigationStatus
		activeMitigationID             string
		score                          int
		trend                          types.Trend
		updatedAgo                     int
	}

	rows := []row{
		{
			id: "RISK001", componentID: "IC-78201-A", componentName: "Power Management IC",
			supplierID: "SUP001", plantID: "PLT001",
			severity: types.SeverityCritical, daysOfSupply: 3, demandPerDay: 2500, currentStock: 7500,
			startIn: 2, endIn: 14, category: types.RootCauseFactoryStrike,
			summary: "Labor dispute at main production facility. Workers demanding wage increases. Negotiations ongoing.",
			status:  types.MitigationStatusNone, score: 92, trend: types.TrendWorsening, updatedAgo: 1,
		},
		{
			id: "RISK002", componentID: "CAP-550-X2", componentName: "Multilayer Ceramic Capacitor",
			supplierID: "SUP002", plantID: "PLT002",
			severity: types.SeverityCritical, daysOfSupply: 5, demandPerDay: 15000, currentStock: 75000,
			startIn: 5, endIn: 18, category: types.RootCausePortCongestion,
			summary: "Severe congestion at Kaohsiung port. Container backlog exceeds 10,000 TEUs. Expected clearance time: 7-10 days.",
			status:  types.MitigationStatusNone, score: 88, trend: types.TrendStable,
		},
		{
			id: "RISK003", componentID: "ALU-FRAME-200", componentName: "Aluminum Chassis Frame",
			supplierID: "SUP003", plantID: "PLT003",
			severity: types.SeverityHigh, daysOfSupply: 8, demandPerDay: 450, currentStock: 3600,
			startIn: 7, endIn: 21, category: types.RootCauseWeather,
			summary: "Severe winter storm affecting transport routes in Bavaria. Road closures expected for 5-7 days.",
			status:  types.MitigationStatusPlanned, activeMitigationID: "MIT003A", score: 75, trend: types.TrendImproving,
		},
		{
			id: "RISK004", componentID: "LCD-15.6-FHD", componentName: `15.6" LCD Display Panel`,
			supplierID: "SUP002", plantID: "PLT001",
			severity: types.SeverityHigh, daysOfSupply: 6, demandPerDay: 800, currentStock: 4800,
			startIn: 4, endIn: 12, category: types.RootCauseCapacity,
			summary: "Production line running at 120% capacity. Lead times extended by 3 weeks due to high demand.",
			status:  types.MitigationStatusNone, score: 72, trend: types.TrendWorsening, updatedAgo: 2,
		},
		{
			id: "RISK005", componentID: "POLY-CASE-M2", componentName: "Polymer Housing Case",
			supplierID: "SUP004", plantID: "PLT002",
			severity: types.SeverityMedium, daysOfSupply: 12, demandPerDay: 3000, currentStock: 36000,
			startIn: 10, endIn: 17, category: types.RootCauseCustomsDelay,
			summary: "New customs regulations requiring additional documentation. Average clearance time increased from 2 to 5 days.",
			status:  types.MitigationStatusNone, score: 58, trend: types.TrendStable,
		},
		{
			id: "RISK006", componentID: "CONN-USB-C", componentName: "USB-C Connector Module",
			supplierID: "SUP001", plantID: "PLT004",
			severity: types.SeverityMedium, daysOfSupply: 10, demandPerDay: 5000, currentStock: 50000,
			startIn: 8, endIn: 15, category: types.RootCauseTransportDelay,
			summary: "Shipping vessel delayed due to mechanical issues. Estimated arrival pushed back 5 days.",
			status:  types.MitigationStatusExecuting, activeMitigationID: "MIT006A", score: 52, trend: types.TrendImproving,
		},
		{
			id: "RISK007", componentID: "BATT-LI-4000", componentName: "Lithium Battery Pack 4000mAh",
			supplierID: "SUP006", plantID: "PLT001",
			severity: types.SeverityHigh, daysOfSupply: 7, demandPerDay: 1200, currentStock: 8400,
			startIn: 3, endIn: 11, category: types.RootCauseQualityIssue,
			summary: "Quality control flagged batch inconsistency. Supplier conducting root cause analysis. Shipments on hold.",
			status:  types.MitigationStatusNone, score: 78, trend: types.TrendWorsening,
		},
		{
			id: "RISK008", componentID: "SENSOR-TEMP-01", componentName: "Temperature Sensor Array",
			supplierID: "SUP005", plantID: "PLT003",
			severity: types.SeverityLow, daysOfSupply: 18, demandPerDay: 2000, currentStock: 36000,
			startIn: 14, endIn: 20, category: types.RootCauseCapacity,
			summary: "Minor capacity constraints due to equipment maintenance. Limited impact expected.",
			status:  types.MitigationStatusNone, score: 32, trend: types.TrendStable, updatedAgo: 3,
		},
		{
			id: "RISK009", componentID: "PCB-MAIN-V3", componentName: "Main Logic PCB Assembly",
			supplierID: "SUP002", plantID: "PLT001",
			severity: types.SeverityCritical, daysOfSupply: 4, demandPerDay: 600, currentStock: 2400,
			startIn: 1, endIn: 9, category: types.RootCauseFactoryStrike,
			summary: "Work stoppage at secondary assembly line. Union negotiations underway. Resolution expected within 5-7 days.",
			status:  types.MitigationStatusPlanned, activeMitigationID: "MIT009A", score: 95, trend: types.TrendStable,
		},
		{
			id: "RISK010", componentID: "HEATSINK-CU", componentName: "Copper Heat Sink Module",
			supplierID: "SUP003", plantID: "PLT002",
			severity: types.SeverityLow, daysOfSupply: 21, demandPerDay: 1500, currentStock: 31500,
			startIn: 18, endIn: 25, category: types.RootCauseTransportDelay,
			summary: "Routine shipping schedule adjustment. No significant impact expected.",
			status:  types.MitigationStatusNone, score: 25, trend: types.TrendStable, updatedAgo: 1,
		},
	}

	risks := make([]*model.ComponentRisk, len(rows))
	for i, r := range rows {
		risks[i] = &model.ComponentRisk{
			ID:                  r.id,
			ComponentID:         r.componentID,
			ComponentName:       r.componentName,
			SupplierID:          r.supplierID,
			SupplierName:        supplierName[r.supplierID],
			PlantID:             r.plantID,
			PlantName:           plantName[r.plantID],
			DaysOfSupply:        r.daysOfSupply,
			DemandPerDay:        r.demandPerDay,
			CurrentStock:        r.currentStock,
			DisruptionStartDate: today.AddDays(r.startIn),
			DisruptionEndDate:   today.AddDays(r.endIn),
			Severity:            r.severity,
			RootCauseCategory:   r.category,
			RootCauseSummary:    r.summary,
			MitigationStatus:    r.status,
			ActiveMitigationID:  r.activeMitigationID,
			RiskScore:           r.score,
			Trend:               r.trend,
			LastUpdated:         today.AddDays(-r.updatedAgo),
		}
	}

	return &model.Seed{
		Suppliers: suppliers,
		Plants:    plants,
		Risks:     risks,
	}
}
