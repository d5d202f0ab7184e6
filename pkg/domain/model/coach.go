package model

// CoachPanelData is everything the coach panel shows for one selected risk
type CoachPanelData struct {
	ComponentRisk      *ComponentRisk      `json:"componentRisk"`
	RootCauseNarrative string              `json:"rootCauseNarrative"`
	ImpactSummary      string              `json:"impactSummary"`
	MitigationOptions  []*MitigationOption `json:"mitigationOptions"`
	AdditionalInsights []string            `json:"additionalInsights,omitempty"`
}
