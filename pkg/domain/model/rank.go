package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// TimelineLimit caps the number of rows on the disruption timeline
const TimelineLimit = 10

// RankByScore returns a copy of risks ordered by risk score, highest first.
// Equal scores keep their relative order.
func RankByScore(risks []*ComponentRisk) []*ComponentRisk {
	ranked := slices.Clone(risks)
	slices.SortStableFunc(ranked, func(a, b *ComponentRisk) int {
		return b.RiskScore - a.RiskScore
	})
	return ranked
}

// RankForTimeline orders risks for the timeline: the selected risk first, then
// by severity (most severe first) and disruption start date. Ties keep input
// order. The result holds at most TimelineLimit risks.
func RankForTimeline(risks []*ComponentRisk, selectedID string) []*ComponentRisk {
	ranked := slices.Clone(risks)
	slices.SortStableFunc(ranked, func(a, b *ComponentRisk) int {
		if selectedID != "" {
			switch {
			case a.ID == selectedID && b.ID != selectedID:
				return -1
			case b.ID == selectedID && a.ID != selectedID:
				return 1
			}
		}
		if d := a.Severity.Rank() - b.Severity.Rank(); d != 0 {
			return d
		}
		return a.DisruptionStartDate.Time().Compare(b.DisruptionStartDate.Time())
	})

	if len(ranked) > TimelineLimit {
		ranked = ranked[:TimelineLimit]
	}
	return ranked
}

// TimelineEntry is one row of the disruption timeline. Offsets are days from
// the window start, clamped to the window.
type TimelineEntry struct {
	Risk            *ComponentRisk `json:"risk"`
	StartOffsetDays int            `json:"startOffsetDays"`
	EndOffsetDays   int            `json:"endOffsetDays"`
	Selected        bool           `json:"selected"`
}

// Timeline is the Gantt view of the highest priority disruptions
type Timeline struct {
	WindowStart types.Date       `json:"windowStart"`
	WindowEnd   types.Date       `json:"windowEnd"`
	TotalDays   int              `json:"totalDays"`
	SelectedID  string           `json:"selectedId,omitempty"`
	Entries     []*TimelineEntry `json:"entries"`
}

// BuildTimeline ranks risks for the timeline and places them on a window of
// horizonWeeks starting today.
func BuildTimeline(risks []*ComponentRisk, selectedID string, now time.Time, horizonWeeks int) *Timeline {
	if horizonWeeks <= 0 || horizonWeeks > MaxTimeHorizon {
		horizonWeeks = DefaultTimeHorizon
	}

	today := types.DateOf(now)
	end := today.AddDays(horizonWeeks * 7)
	totalDays := end.DaysSince(today) + 1

	ranked := RankForTimeline(risks, selectedID)
	entries := make([]*TimelineEntry, 0, len(ranked))
	last := totalDays - 1
	for _, r := range ranked {
		// bars stay inside the window and never end before they start
		start := min(max(0, r.DisruptionStartDate.DaysSince(today)), last)
		end := min(max(start, r.DisruptionEndDate.DaysSince(today)), last)
		entries = append(entries, &TimelineEntry{
			Risk:            r,
			StartOffsetDays: start,
			EndOffsetDays:   end,
			Selected:        selectedID != "" && r.ID == selectedID,
		})
	}

	return &Timeline{
		WindowStart: today,
		WindowEnd:   end,
		TotalDays:   totalDays,
		SelectedID:  selectedID,
		Entries:     entries,
	}
}
