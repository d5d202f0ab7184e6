package narrative

import (
	"fmt"

	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// Insights derives supporting observations for risk from the other risks
// currently tracked. peers may include risk itself.
func Insights(risk *model.ComponentRisk, peers []*model.ComponentRisk) []string {
	var (
		fromSupplier    int
		atPlant         int
		criticalAtPlant int
	)
	for _, p := range peers {
		if p.ID == risk.ID {
			continue
		}
		if p.SupplierID == risk.SupplierID {
			fromSupplier++
		}
		if p.PlantID == risk.PlantID {
			atPlant++
			if p.Severity == types.SeverityCritical {
				criticalAtPlant++
			}
		}
	}

	var insights []string

	if fromSupplier > 0 {
		insights = append(insights, fmt.Sprintf("%s is also the source of %s currently at risk",
			risk.SupplierName, plural(fromSupplier, "other component", "other components")))
	} else {
		insights = append(insights, fmt.Sprintf("No other tracked component depends on %s", risk.SupplierName))
	}

	if atPlant > 0 {
		insights = append(insights, fmt.Sprintf("%s has %s, %d of them critical",
			risk.PlantName, plural(atPlant, "other open risk", "other open risks"), criticalAtPlant))
	}

	switch risk.Trend {
	case types.TrendWorsening:
		insights = append(insights, "The situation has been worsening since the last update")
	case types.TrendImproving:
		insights = append(insights, "The situation has been improving since the last update")
	}

	if risk.MitigationStatus.IsActive() && risk.ActiveMitigationID != "" {
		insights = append(insights, fmt.Sprintf("Mitigation %s is already %s",
			risk.ActiveMitigationID, statusWord(risk.MitigationStatus)))
	}

	return insights
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

func statusWord(s types.MitigationStatus) string {
	switch s {
	case types.MitigationStatusPlanned:
		return "planned"
	case types.MitigationStatusExecuting:
		return "executing"
	default:
		return string(s)
	}
}
