package analytics

import (
	"sort"
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
)

// StreakInfo holds the streak metrics derived from a set of training dates.
// LongestGapDays is nil when fewer than two distinct dates exist.
type StreakInfo struct {
	Current        int
	Longest        int
	LongestGapDays *int
}

// ComputeStreaks derives streak metrics from distinct, ascending calendar
// dates. A streak is a maximal run where consecutive dates differ by at most
// intervalDays; the run ending at the most recent date only counts as current
// when that date is within intervalDays of today. The longest gap is a
// diagnostic independent of the interval.
func ComputeStreaks(dates []time.Time, intervalDays int, today time.Time) StreakInfo {
	if len(dates) == 0 {
		return StreakInfo{}
	}
	if intervalDays < 1 {
		intervalDays = 1
	}

	run := 1
	longest := 1
	var longestGap *int

	for i := 1; i < len(dates); i++ {
		gap := daysBetween(dates[i-1], dates[i])
		if longestGap == nil || gap > *longestGap {
			g := gap
			longestGap = &g
		}
		if gap <= intervalDays {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	info := StreakInfo{Longest: longest, LongestGapDays: longestGap}
	if daysBetween(dates[len(dates)-1], today) <= intervalDays {
		info.Current = run
	}
	return info
}

// DistinctDates extracts the sorted set of distinct UTC calendar dates from a
// workout history, in ascending order.
func DistinctDates(workouts []*domain.Workout) []time.Time {
	seen := make(map[time.Time]bool, len(workouts))
	var dates []time.Time
	for _, w := range workouts {
		d := w.Date()
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// daysBetween returns the whole-day difference between two midnight-aligned
// dates. Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
