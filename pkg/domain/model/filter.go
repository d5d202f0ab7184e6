package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

const (
	// DefaultTimeHorizon is the forward window in weeks used when none is given
	DefaultTimeHorizon = 4
	// MaxTimeHorizon is the widest supported forward window in weeks
	MaxTimeHorizon = 4

	nextTwoWeeksDays = 14
)

// RiskFilters is the query criteria for the risk list. Empty strings and
// FilterAll disable a dimension; TimeHorizon 0 disables the horizon window.
type RiskFilters struct {
	SearchQuery       string `json:"searchQuery" validate:"max=200"`
	Severity          string `json:"severity" validate:"severity_filter"`
	RootCauseCategory string `json:"rootCauseCategory" validate:"root_cause_filter"`
	SupplierID        string `json:"supplierId" validate:"max=64"`
	PlantID           string `json:"plantId" validate:"max=64"`
	OnlyCritical      bool   `json:"onlyCritical"`
	OnlyNextTwoWeeks  bool   `json:"onlyNextTwoWeeks"`
	// TimeHorizon is in weeks
	TimeHorizon int `json:"timeHorizon" validate:"min=0,max=4"`
}

// DefaultRiskFilters returns filters matching every risk inside the default horizon
func DefaultRiskFilters() RiskFilters {
	return RiskFilters{
		Severity:          FilterAll,
		RootCauseCategory: FilterAll,
		SupplierID:        FilterAll,
		PlantID:           FilterAll,
		TimeHorizon:       DefaultTimeHorizon,
	}
}

// Validate checks the filter values
func (f RiskFilters) Validate() error {
	if err := validate.Struct(f); err != nil {
		return goerr.Wrap(ErrInvalidFilters, err.Error())
	}
	return nil
}

// horizonDays returns the forward window in days, or 0 when unbounded.
// OnlyNextTwoWeeks narrows any configured horizon to 14 days.
func (f RiskFilters) horizonDays() int {
	if f.OnlyNextTwoWeeks {
		return nextTwoWeeksDays
	}
	return f.TimeHorizon * 7
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// Match reports whether r satisfies every active predicate. now is the
// reference instant for date windows.
func (f RiskFilters) Match(r *ComponentRisk, now time.Time) bool {
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(r.ComponentName), q) &&
			!strings.Contains(strings.ToLower(r.ComponentID), q) &&
			!strings.Contains(strings.ToLower(r.SupplierName), q) {
			return false
		}
	}

	if active(f.Severity) && string(r.Severity) != f.Severity {
		return false
	}
	if active(f.RootCauseCategory) && string(r.RootCauseCategory) != f.RootCauseCategory {
		return false
	}
	if active(f.SupplierID) && r.SupplierID != f.SupplierID {
		return false
	}
	if active(f.PlantID) && r.PlantID != f.PlantID {
		return false
	}
	if f.OnlyCritical && r.Severity != types.SeverityCritical {
		return false
	}

	if days := f.horizonDays(); days > 0 {
		limit := types.DateOf(now).AddDays(days)
		if r.DisruptionStartDate.After(limit) {
			return false
		}
	}

	return true
}

// FilterRisks returns the risks matching f in their original order. The input
// slice is not modified.
func FilterRisks(risks []*ComponentRisk, f RiskFilters, now time.Time) []*ComponentRisk {
	matched := make([]*ComponentRisk, 0, len(risks))
	for _, r := range risks {
		if f.Match(r, now) {
			matched = append(matched, r)
		}
	}
	return matched
}
