package formatter

import (
	"strconv"

	"github.com/alexanderramin/athlog/internal/domain"
)

// WorkoutTable renders workout entries newest-first the way the log stores
// them. Metric columns that are empty across every row are hidden.
func WorkoutTable(workouts []*domain.Workout, units domain.Units) string {
	if len(workouts) == 0 {
		return Dim("No workouts found.") + "\n"
	}

	headers := []string{"ID", "Date", "Exercise", "Type", "Sets", "Reps",
		"Weight (" + units.WeightAbbr() + ")",
		"Duration (min)",
		"Distance (" + units.DistanceAbbr() + ")",
		"Notes"}

	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		typeStr := ""
		if w.ExerciseType != nil {
			typeStr = string(*w.ExerciseType)
		}
		weight := ""
		if ew := w.EffectiveWeight(); ew != nil {
			weight = weightCell(*ew, units)
		}
		distance := ""
		if w.DistanceKm != nil {
			distance = distanceCell(*w.DistanceKm, units)
		}
		rows = append(rows, []string{
			strconv.FormatInt(w.ID, 10),
			w.Timestamp.UTC().Format("2006-01-02"),
			w.ExerciseName,
			typeStr,
			formatInt64Ptr(w.Sets),
			formatInt64Ptr(w.Reps),
			weight,
			formatInt64Ptr(w.DurationMin),
			distance,
			formatStringPtr(w.Notes),
		})
	}

	headers, rows = PruneEmptyColumns(headers, rows, "ID", "Date", "Exercise")
	return RenderTable(headers, rows)
}

// weightCell renders a bare number; the unit lives in the column header.
func weightCell(kg float64, units domain.Units) string {
	if units == domain.UnitsImperial {
		return trimFloat(kg * kgToLbs)
	}
	return trimFloat(kg)
}

func distanceCell(km float64, units domain.Units) string {
	if units == domain.UnitsImperial {
		return trimFloat(km * domain.KmToMile)
	}
	return trimFloat(km)
}
