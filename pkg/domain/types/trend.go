package types

import "github.com/m-mizutani/goerr/v2"

// Trend is the direction a risk score is moving
type Trend string

const (
	TrendImproving Trend = "IMPROVING"
	TrendStable    Trend = "STABLE"
	TrendWorsening Trend = "WORSENING"
)

// IsValid checks if the trend is valid
func (t Trend) IsValid() bool {
	switch t {
	case TrendImproving, TrendStable, TrendWorsening:
		return true
	default:
		return false
	}
}

func (t Trend) String() string {
	return string(t)
}

// ParseTrend parses a string into a Trend
func ParseTrend(s string) (Trend, error) {
	t := Trend(s)
	if !t.IsValid() {
		return "", goerr.New("invalid trend", goerr.V("trend", s))
	}
	return t, nil
}
