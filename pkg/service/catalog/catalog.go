// Package catalog maps a root cause category to the mitigation options a
// planner can pick from. Options are generated from static templates and
// carry ids derived from the owning risk, so repeated calls are stable.
package catalog

import (
	"fmt"

	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// template is a MitigationOption without its risk binding
type template struct {
	title               string
	description         string
	detailedDescription string
	recommended         bool
	leadTimeDays        int
	cost                types.CostImpact
	confidence          int
	kind                types.MitigationType
	prerequisites       []string
	risks               []string
	expectedOutcome     string
}

var templates = map[types.RootCauseCategory][]template{
	types.RootCauseFactoryStrike: {
		{
			title:               "Switch to Alternate Supplier",
			description:         "Source from qualified backup supplier with available capacity",
			detailedDescription: "Redirect orders to pre-qualified alternate supplier. This option provides the most reliable solution but may require quality validation for first shipments.",
			recommended:         true,
			leadTimeDays:        -5,
			cost:                types.CostImpactMedium,
			confidence:          85,
			kind:                types.MitigationAltSupplier,
			prerequisites:       []string{"Alternate supplier qualification", "Updated BOM approval"},
			risks:               []string{"Initial quality variance", "Setup time for new logistics"},
			expectedOutcome:     "Supply continuity restored within 5-7 days",
		},
		{
			title:               "Expedite via Air Freight",
			description:         "Air ship existing inventory from supplier's other facilities",
			detailedDescription: "Arrange emergency air freight from supplier's secondary facility or regional warehouse.",
			leadTimeDays:        -8,
			cost:                types.CostImpactHigh,
			confidence:          75,
			kind:                types.MitigationAirFreight,
			expectedOutcome:     "Partial supply restored within 3 days",
		},
		{
			title:               "Reschedule Production",
			description:         "Adjust production schedule to defer affected product lines",
			detailedDescription: "Temporarily shift production to product variants that don't require this component.",
			leadTimeDays:        0,
			cost:                types.CostImpactLow,
			confidence:          90,
			kind:                types.MitigationRescheduleProduction,
			risks:               []string{"Customer delivery delays", "Revenue impact"},
			expectedOutcome:     "Production continuity maintained with adjusted mix",
		},
	},
	types.RootCausePortCongestion: {
		{
			title:               "Re-route Through Alternate Port",
			description:         "Divert shipments to less congested port facility",
			detailedDescription: "Redirect incoming shipments to alternate port with current average wait time of 2 days vs 10 days at primary port.",
			recommended:         true,
			leadTimeDays:        -6,
			cost:                types.CostImpactMedium,
			confidence:          80,
			kind:                types.MitigationRerouteTransport,
			expectedOutcome:     "Shipments cleared within 3-4 days",
		},
		{
			title:           "Air Freight Critical Components",
			description:     "Emergency air shipment for most critical items",
			leadTimeDays:    -10,
			cost:            types.CostImpactHigh,
			confidence:      95,
			kind:            types.MitigationAirFreight,
			expectedOutcome: "Critical supply secured within 48 hours",
		},
		{
			title:           "Increase Safety Stock",
			description:     "Place advance orders to buffer against delays",
			leadTimeDays:    0,
			cost:            types.CostImpactMedium,
			confidence:      70,
			kind:            types.MitigationAdjustSafetyStock,
			expectedOutcome: "Buffer stock increased by 25%",
		},
	},
	types.RootCauseWeather: {
		{
			title:           "Expedite Pre-Storm Shipment",
			description:     "Rush shipment before weather window closes",
			recommended:     true,
			leadTimeDays:    -7,
			cost:            types.CostImpactMedium,
			confidence:      65,
			kind:            types.MitigationExpediteShipment,
			risks:           []string{"Timing uncertainty", "Partial shipment possible"},
			expectedOutcome: "Secure 2 weeks additional supply",
		},
		{
			title:           "Activate Alternate Supplier",
			description:     "Switch to supplier in unaffected region",
			leadTimeDays:    -5,
			cost:            types.CostImpactHigh,
			confidence:      85,
			kind:            types.MitigationAltSupplier,
			expectedOutcome: "Full supply continuity from day 5",
		},
		{
			title:           "Defer Non-Critical Production",
			description:     "Prioritize critical product lines",
			leadTimeDays:    0,
			cost:            types.CostImpactLow,
			confidence:      95,
			kind:            types.MitigationRescheduleProduction,
			expectedOutcome: "Critical lines maintained at 100%",
		},
	},
	types.RootCauseCapacity: {
		{
			title:           "Dual Source Activation",
			description:     "Split orders between primary and secondary supplier",
			recommended:     true,
			leadTimeDays:    -4,
			cost:            types.CostImpactMedium,
			confidence:      80,
			kind:            types.MitigationAltSupplier,
			expectedOutcome: "Combined capacity meets demand",
		},
		{
			title:           "Increase Order Quantity",
			description:     "Place larger orders to secure allocation priority",
			leadTimeDays:    -2,
			cost:            types.CostImpactMedium,
			confidence:      70,
			kind:            types.MitigationIncreaseOrderQty,
			expectedOutcome: "Priority allocation secured",
		},
		{
			title:           "Adjust Production Schedule",
			description:     "Level-load production across available supply",
			leadTimeDays:    0,
			cost:            types.CostImpactLow,
			confidence:      90,
			kind:            types.MitigationRescheduleProduction,
			expectedOutcome: "Smooth production with extended timeline",
		},
	},
	types.RootCauseTransportDelay: {
		{
			title:           "Re-route Shipment",
			description:     "Switch to alternate carrier or route",
			recommended:     true,
			leadTimeDays:    -4,
			cost:            types.CostImpactMedium,
			confidence:      85,
			kind:            types.MitigationRerouteTransport,
			expectedOutcome: "Delivery within original timeline",
		},
		{
			title:           "Air Freight Upgrade",
			description:     "Convert sea shipment to air freight",
			leadTimeDays:    -8,
			cost:            types.CostImpactHigh,
			confidence:      95,
			kind:            types.MitigationAirFreight,
			expectedOutcome: "Delivery 8 days earlier",
		},
	},
	types.RootCauseQualityIssue: {
		{
			title:           "Activate Qualified Alternate",
			description:     "Switch to pre-qualified backup supplier",
			recommended:     true,
			leadTimeDays:    -3,
			cost:            types.CostImpactMedium,
			confidence:      90,
			kind:            types.MitigationAltSupplier,
			expectedOutcome: "Quality-assured supply within 5 days",
		},
		{
			title:           "Expedite Inspection & Release",
			description:     "Fast-track quality review of held inventory",
			leadTimeDays:    -2,
			cost:            types.CostImpactLow,
			confidence:      60,
			kind:            types.MitigationExpediteShipment,
			risks:           []string{"Quality risk if root cause not resolved"},
			expectedOutcome: "Partial release of conforming units",
		},
	},
	types.RootCauseCustomsDelay: {
		{
			title:           "Expedite Documentation",
			description:     "Fast-track customs clearance with broker",
			recommended:     true,
			leadTimeDays:    -3,
			cost:            types.CostImpactLow,
			confidence:      75,
			kind:            types.MitigationExpediteShipment,
			expectedOutcome: "Clearance within 2 days",
		},
		{
			title:           "Source from Bonded Warehouse",
			description:     "Use pre-cleared inventory from local bonded facility",
			leadTimeDays:    -5,
			cost:            types.CostImpactMedium,
			confidence:      85,
			kind:            types.MitigationAltSupplier,
			expectedOutcome: "Immediate availability from local stock",
		},
	},
	types.RootCauseSupplierBankruptcy: {
		{
			title:           "Emergency Supplier Switch",
			description:     "Immediately transition to backup supplier",
			recommended:     true,
			leadTimeDays:    -5,
			cost:            types.CostImpactHigh,
			confidence:      80,
			kind:            types.MitigationAltSupplier,
			expectedOutcome: "Supply continuity from new source",
		},
		{
			title:           "Secure Remaining Inventory",
			description:     "Purchase all available stock from affected supplier",
			leadTimeDays:    -2,
			cost:            types.CostImpactMedium,
			confidence:      50,
			kind:            types.MitigationIncreaseOrderQty,
			risks:           []string{"Limited availability", "Legal complexity"},
			expectedOutcome: "Short-term buffer secured",
		},
	},
	types.RootCauseOther: {
		{
			title:           "Consult Supply Chain Team",
			description:     "Engage specialist team for custom resolution",
			recommended:     true,
			leadTimeDays:    0,
			cost:            types.CostImpactLow,
			confidence:      70,
			kind:            types.MitigationRescheduleProduction,
			expectedOutcome: "Custom mitigation plan developed",
		},
	},
}

// OptionID returns the id of the index-th (0-based) option generated for riskID
func OptionID(riskID string, index int) string {
	return fmt.Sprintf("MIT-%s-%d", riskID, index+1)
}

// OptionsFor returns the mitigation options for a risk. Categories without
// templates fall back to the OTHER set. The returned slice and its options are
// owned by the caller.
func OptionsFor(risk *model.ComponentRisk) []*model.MitigationOption {
	set, ok := templates[risk.RootCauseCategory]
	if !ok {
		set = templates[types.RootCauseOther]
	}

	options := make([]*model.MitigationOption, len(set))
	for i, tpl := range set {
		options[i] = tpl.bind(risk.ID, i)
	}
	return options
}

// Find returns the option with mitigationID generated for risk, or nil
func Find(risk *model.ComponentRisk, mitigationID string) *model.MitigationOption {
	for _, opt := range OptionsFor(risk) {
		if opt.ID == mitigationID {
			return opt
		}
	}
	return nil
}

func (t template) bind(riskID string, index int) *model.MitigationOption {
	opt := &model.MitigationOption{
		ID:                          OptionID(riskID, index),
		ComponentRiskID:             riskID,
		Title:                       t.title,
		Description:                 t.description,
		DetailedDescription:         t.detailedDescription,
		IsRecommended:               t.recommended,
		EstimatedLeadTimeImpactDays: t.leadTimeDays,
		EstimatedCostImpact:         t.cost,
		ConfidenceScore:             t.confidence,
		Type:                        t.kind,
		ExpectedOutcome:             t.expectedOutcome,
	}
	if len(t.prerequisites) > 0 {
		opt.Prerequisites = append([]string(nil), t.prerequisites...)
	}
	if len(t.risks) > 0 {
		opt.Risks = append([]string(nil), t.risks...)
	}
	return opt
}
