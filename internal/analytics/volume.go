package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/athlog/internal/domain"
)

// DailyVolume is one (date, exercise) aggregation row.
type DailyVolume struct {
	Date         time.Time
	ExerciseName string
	Volume       float64
}

// AggregateVolume sums sets × reps × effective weight per (date, exercise).
// A workout missing any factor contributes 0 for that factor's product — it
// still appears in the result set rather than being excluded. Rows are
// ordered most recent date first, exercise name ascending within a date.
//
// When limitDays > 0 the result is restricted to the N most recent distinct
// training dates present in the input (distinct calendar dates, not rows).
func AggregateVolume(workouts []*domain.Workout, limitDays int) []DailyVolume {
	type key struct {
		date time.Time
		name string
	}
	totals := make(map[key]float64)
	for _, w := range workouts {
		k := key{date: w.Date(), name: w.ExerciseName}
		totals[k] += workoutVolume(w)
	}

	rows := make([]DailyVolume, 0, len(totals))
	for k, v := range totals {
		rows = append(rows, DailyVolume{Date: k.date, ExerciseName: k.name, Volume: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return strings.ToLower(rows[i].ExerciseName) < strings.ToLower(rows[j].ExerciseName)
	})

	if limitDays > 0 {
		rows = keepRecentDates(rows, limitDays)
	}
	return rows
}

// keepRecentDates keeps rows belonging to the first n distinct dates of an
// already date-descending row list.
func keepRecentDates(rows []DailyVolume, n int) []DailyVolume {
	var kept []DailyVolume
	var lastDate time.Time
	distinct := 0
	for _, row := range rows {
		if distinct == 0 || !row.Date.Equal(lastDate) {
			distinct++
			lastDate = row.Date
			if distinct > n {
				break
			}
		}
		kept = append(kept, row)
	}
	return kept
}

func workoutVolume(w *domain.Workout) float64 {
	var sets, reps, weight float64
	if w.Sets != nil {
		sets = float64(*w.Sets)
	}
	if w.Reps != nil {
		reps = float64(*w.Reps)
	}
	if ew := w.EffectiveWeight(); ew != nil {
		weight = *ew
	}
	return sets * reps * weight
}
