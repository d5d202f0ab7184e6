package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

var severityColors = map[types.Severity]*color.Color{
	types.SeverityCritical: color.New(color.FgRed),
	types.SeverityHigh:     color.New(color.FgYellow),
	types.SeverityMedium:   color.New(color.FgCyan),
	types.SeverityLow:      color.New(color.FgGreen),
}

var (
	headerColor  = color.New(color.Bold)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

func severityLabel(s types.Severity) string {
	label := fmt.Sprintf("%-8s", s.Label())
	if c, ok := severityColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

func renderRisks(w io.Writer, risks []*model.ComponentRisk) {
	if len(risks) == 0 {
		fmt.Fprintln(w, "No component risks match the filters")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEVERITY\tSCORE\tCOMPONENT\tSUPPLIER\tPLANT\tDISRUPTION\tSUPPLY\tSTATUS")
	for _, r := range risks {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s - %s\t%sd\t%s\n",
			r.ID,
			severityLabel(r.Severity),
			r.RiskScore,
			r.ComponentName,
			r.SupplierName,
			r.PlantName,
			r.DisruptionStartDate.Format("Jan 2"),
			r.DisruptionEndDate.Format("Jan 2"),
			humanize.Ftoa(r.DaysOfSupply),
			r.MitigationStatus,
		)
	}
	_ = tw.Flush()
}

func renderTimeline(w io.Writer, tl *model.Timeline) {
	fmt.Fprintf(w, "%s to %s (%d days)\n",
		tl.WindowStart.Format("Jan 2"), tl.WindowEnd.Format("Jan 2"), tl.TotalDays)

	if len(tl.Entries) == 0 {
		fmt.Fprintln(w, "No disruptions in this window")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range tl.Entries {
		marker := " "
		if e.Selected {
			marker = ">"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t|%s|\n", marker, e.Risk.ID, severityLabel(e.Risk.Severity), bar(e, tl.TotalDays))
	}
	_ = tw.Flush()
}

// bar draws the disruption window of e, one character per day
func bar(e *model.TimelineEntry, totalDays int) string {
	var sb strings.Builder
	for day := range totalDays {
		if day >= e.StartOffsetDays && day <= e.EndOffsetDays {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func renderCoach(w io.Writer, data *model.CoachPanelData) {
	r := data.ComponentRisk
	headerColor.Fprintf(w, "%s  %s (%s)\n", r.ID, r.ComponentName, r.ComponentID)
	fmt.Fprintf(w, "Severity: %s  Score: %d  Trend: %s\n\n", severityLabel(r.Severity), r.RiskScore, r.Trend)

	headerColor.Fprintln(w, "Root cause")
	fmt.Fprintln(w, data.RootCauseNarrative)
	fmt.Fprintln(w)

	headerColor.Fprintln(w, "Impact")
	fmt.Fprintln(w, data.ImpactSummary)
	fmt.Fprintln(w)

	headerColor.Fprintln(w, "Mitigation options")
	for _, opt := range data.MitigationOptions {
		recommended := ""
		if opt.IsRecommended {
			recommended = successColor.Sprint(" [recommended]")
		}
		fmt.Fprintf(w, "  %s  %s%s\n", opt.ID, opt.Title, recommended)
		fmt.Fprintf(w, "      %s\n", opt.Description)
		fmt.Fprintf(w, "      type: %s  lead time: %+dd  cost: %s  confidence: %d%%\n",
			opt.Type.Label(), opt.EstimatedLeadTimeImpactDays, opt.EstimatedCostImpact, opt.ConfidenceScore)
	}

	if len(data.AdditionalInsights) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "Insights")
		for _, insight := range data.AdditionalInsights {
			fmt.Fprintf(w, "  - %s\n", insight)
		}
	}
}

func renderExecution(w io.Writer, result *model.MitigationExecutionResult) {
	if !result.Success {
		failureColor.Fprintf(w, "FAILED  %s on %s\n", result.MitigationID, result.ComponentRiskID)
		fmt.Fprintln(w, result.Message)
		return
	}

	successColor.Fprintf(w, "STARTED  %s on %s\n", result.MitigationID, result.ComponentRiskID)
	fmt.Fprintln(w, result.Message)
	fmt.Fprintf(w, "Reference: %s\n", result.ReferenceNumber)
	if result.EstimatedCompletionDate != nil {
		fmt.Fprintf(w, "Estimated completion: %s (%s)\n",
			result.EstimatedCompletionDate.Format("Jan 2, 2006"),
			humanize.RelTime(*result.EstimatedCompletionDate, result.Timestamp, "ago", "from now"))
	}
}
