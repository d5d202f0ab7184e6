package types

// CostImpact is a coarse estimate of what a mitigation costs
type CostImpact string

const (
	CostImpactLow    CostImpact = "LOW"
	CostImpactMedium CostImpact = "MEDIUM"
	CostImpactHigh   CostImpact = "HIGH"
)

// IsValid checks if the cost impact is valid
func (c CostImpact) IsValid() bool {
	switch c {
	case CostImpactLow, CostImpactMedium, CostImpactHigh:
		return true
	default:
		return false
	}
}

func (c CostImpact) String() string {
	return string(c)
}
