package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/athlog/internal/analytics"
	"github.com/alexanderramin/athlog/internal/domain"
)

// WriteWorkoutsCSV writes workout entries as CSV in display units. Missing
// metrics become empty cells rather than zeros.
func WriteWorkoutsCSV(w io.Writer, workouts []*domain.Workout, units domain.Units) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "date", "exercise", "type", "sets", "reps",
		"weight_" + units.WeightAbbr(),
		"duration_min",
		"distance_" + units.DistanceAbbr(),
		"notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, wo := range workouts {
		typeStr := ""
		if wo.ExerciseType != nil {
			typeStr = string(*wo.ExerciseType)
		}
		weight := ""
		if ew := wo.EffectiveWeight(); ew != nil {
			weight = weightCell(*ew, units)
		}
		distance := ""
		if wo.DistanceKm != nil {
			distance = distanceCell(*wo.DistanceKm, units)
		}
		record := []string{
			strconv.FormatInt(wo.ID, 10),
			wo.Timestamp.UTC().Format("2006-01-02"),
			wo.ExerciseName,
			typeStr,
			formatInt64Ptr(wo.Sets),
			formatInt64Ptr(wo.Reps),
			weight,
			formatInt64Ptr(wo.DurationMin),
			distance,
			formatStringPtr(wo.Notes),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteVolumeCSV writes per-day volume rows as CSV in display units.
func WriteVolumeCSV(w io.Writer, rows []analytics.DailyVolume, units domain.Units) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "exercise", "volume_" + units.WeightAbbr()}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Date.UTC().Format("2006-01-02"),
			r.ExerciseName,
			weightCell(r.Volume, units),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBodyweightsCSV writes bodyweight entries as CSV in display units.
func WriteBodyweightsCSV(w io.Writer, entries []*domain.BodyweightEntry, units domain.Units) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "weight_" + units.WeightAbbr()}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, b := range entries {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			b.Timestamp.UTC().Format("2006-01-02"),
			weightCell(b.Weight, units),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
