package cli

var (
	RenderRisks     = renderRisks
	RenderTimeline  = renderTimeline
	RenderCoach     = renderCoach
	RenderExecution = renderExecution
)
