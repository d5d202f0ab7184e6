// Package narrative renders the human readable texts of the coach panel.
package narrative

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// readableDate is the short month-day form used in narratives, e.g. "Jan 2"
const readableDate = "Jan 2"

// urgentThresholdDays is the days-of-supply level under which stock runs out
// inside the disruption window
const urgentThresholdDays = 7

var severityPhrases = map[types.Severity]string{
	types.SeverityCritical: "critically at risk",
	types.SeverityHigh:     "at high risk",
	types.SeverityMedium:   "at moderate risk",
	types.SeverityLow:      "at low risk",
}

// causeClauses complete the sentence started by the severity phrase. The
// supplier name is substituted for %[1]s where present.
var causeClauses = map[types.RootCauseCategory]string{
	types.RootCauseFactoryStrike:      "due to an ongoing labor dispute at %[1]s's facility. Workers have initiated a work stoppage, and production has been significantly reduced.",
	types.RootCausePortCongestion:     "due to port congestion causing significant delays in container processing and clearance.",
	types.RootCauseWeather:            "due to a severe weather event affecting the transportation route. Road closures and logistics disruptions are expected to continue for several days.",
	types.RootCauseCapacity:           "because the supplier is operating at maximum capacity. High demand across the industry has extended lead times significantly.",
	types.RootCauseTransportDelay:     "due to unexpected shipping delays. The transport vessel has encountered issues that have pushed back the estimated arrival date.",
	types.RootCauseQualityIssue:       "because of a quality control hold on recent production batches. The supplier is investigating the root cause before releasing inventory.",
	types.RootCauseCustomsDelay:       "due to new customs regulations requiring additional documentation. Average clearance times have increased significantly.",
	types.RootCauseSupplierBankruptcy: "because the supplier is experiencing financial difficulties. There are concerns about their ability to fulfill orders.",
	types.RootCauseOther:              "due to supply chain disruptions that require immediate attention.",
}

// Narrative explains what is at risk, when and why. Emphasis uses **bold**
// markers which the client renders.
func Narrative(risk *model.ComponentRisk) string {
	severity, ok := severityPhrases[risk.Severity]
	if !ok {
		severity = "at risk"
	}

	clause, ok := causeClauses[risk.RootCauseCategory]
	if !ok {
		clause = causeClauses[types.RootCauseOther]
	}
	if strings.Contains(clause, "%[1]s") {
		clause = fmt.Sprintf(clause, risk.SupplierName)
	}

	return fmt.Sprintf(
		"It looks like **%s** (%s) is %s of a supply disruption between %s and %s %s Currently, you have **%s days** of supply remaining (%s units), with daily demand of %s units.",
		risk.ComponentName,
		risk.ComponentID,
		severity,
		risk.DisruptionStartDate.Format(readableDate),
		risk.DisruptionEndDate.Format(readableDate),
		clause,
		humanize.Ftoa(risk.DaysOfSupply),
		humanize.Comma(risk.CurrentStock),
		humanize.Comma(risk.DemandPerDay),
	)
}

// DaysUntil returns the whole days from now until the disruption starts,
// rounded up. It is zero or negative once the window has opened.
func DaysUntil(risk *model.ComponentRisk, now time.Time) int {
	y, m, d := now.Date()
	elapsed := now.Sub(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	days := risk.DisruptionStartDate.DaysSince(types.DateOf(now))
	hours := float64(days)*24 - elapsed.Hours()
	return int(math.Ceil(hours / 24))
}

// ImpactSummary tells whether current stock bridges the gap to the
// disruption window and how urgent action is
func ImpactSummary(risk *model.ComponentRisk, now time.Time) string {
	daysUntil := DaysUntil(risk, now)

	switch {
	case risk.DaysOfSupply < float64(daysUntil):
		return "Your current stock should cover demand until the disruption window. However, action is recommended to avoid running low during the recovery period."

	case risk.DaysOfSupply < urgentThresholdDays:
		shortfall := urgentThresholdDays - risk.DaysOfSupply
		return fmt.Sprintf("**Urgent:** Current stock will be depleted %s days into the disruption window. Immediate action is required to prevent production stoppage.",
			humanize.Ftoa(shortfall))

	default:
		return fmt.Sprintf("Without intervention, there is a significant risk of stock-out during the disruption window, potentially impacting production at %s.",
			risk.PlantName)
	}
}
