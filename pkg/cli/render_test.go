package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/cli"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
	"github.com/secmon-lab/controltower/pkg/service/catalog"
	"github.com/secmon-lab/controltower/pkg/service/narrative"
)

var renderNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

func seedRisks() []*model.ComponentRisk {
	return memory.DefaultSeed(types.DateOf(renderNow)).Risks
}

func TestRenderRisks(t *testing.T) {
	var buf bytes.Buffer
	cli.RenderRisks(&buf, model.RankByScore(seedRisks()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	gt.A(t, lines).Length(11)
	gt.S(t, lines[0]).Contains("SEVERITY")
	gt.S(t, lines[1]).Contains("RISK009")
	gt.S(t, lines[1]).Contains("Critical")
	gt.S(t, lines[1]).Contains("Oct 20 - Oct 28")
	gt.S(t, lines[1]).Contains("PLANNED")

	buf.Reset()
	cli.RenderRisks(&buf, nil)
	gt.S(t, buf.String()).Contains("No component risks match")
}

func TestRenderTimeline(t *testing.T) {
	tl := model.BuildTimeline(seedRisks(), "RISK010", renderNow, 4)

	var buf bytes.Buffer
	cli.RenderTimeline(&buf, tl)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	gt.S(t, lines[0]).Equal("Oct 19 to Nov 16 (29 days)")
	gt.S(t, lines[1]).Contains("> RISK010")
	// days 18..25 of a 29 day window
	gt.S(t, lines[1]).Contains("|" + strings.Repeat(".", 18) + strings.Repeat("#", 8) + strings.Repeat(".", 3) + "|")
}

func TestRenderCoach(t *testing.T) {
	risk := seedRisks()[0]
	data := &model.CoachPanelData{
		ComponentRisk:      risk,
		RootCauseNarrative: narrative.Narrative(risk),
		ImpactSummary:      narrative.ImpactSummary(risk, renderNow),
		MitigationOptions:  catalog.OptionsFor(risk),
		AdditionalInsights: narrative.Insights(risk, seedRisks()),
	}

	var buf bytes.Buffer
	cli.RenderCoach(&buf, data)

	out := buf.String()
	gt.S(t, out).Contains("RISK001  Power Management IC (IC-78201-A)")
	gt.S(t, out).Contains("MIT-RISK001-1")
	gt.S(t, out).Contains("[recommended]")
	gt.S(t, out).Contains("Insights")
}

func TestRenderExecution(t *testing.T) {
	completion := renderNow.Add(5 * 24 * time.Hour)

	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		cli.RenderExecution(&buf, &model.MitigationExecutionResult{
			Success:                 true,
			MitigationID:            "MIT-RISK001-1",
			ComponentRiskID:         "RISK001",
			Message:                 "Mitigation action initiated successfully.",
			Timestamp:               renderNow,
			ReferenceNumber:         "MIT-ABCDEF012345",
			EstimatedCompletionDate: &completion,
		})
		out := buf.String()
		gt.S(t, out).Contains("STARTED  MIT-RISK001-1 on RISK001")
		gt.S(t, out).Contains("Reference: MIT-ABCDEF012345")
		gt.S(t, out).Contains("Estimated completion: Oct 24, 2026 (5 days from now)")
	})

	t.Run("failure", func(t *testing.T) {
		var buf bytes.Buffer
		cli.RenderExecution(&buf, &model.MitigationExecutionResult{
			MitigationID:    "MIT-RISK001-1",
			ComponentRiskID: "RISK001",
			Message:         "Failed to initiate mitigation.",
		})
		gt.S(t, buf.String()).Contains("FAILED  MIT-RISK001-1 on RISK001")
		gt.S(t, buf.String()).NotContains("Reference")
	})
}
