package formatter

import (
	"github.com/alexanderramin/athlog/internal/analytics"
	"github.com/alexanderramin/athlog/internal/domain"
)

// VolumeTable renders per-day training volume, most recent date first.
func VolumeTable(rows []analytics.DailyVolume, units domain.Units) string {
	if len(rows) == 0 {
		return Dim("No volume data for the given filters.") + "\n"
	}

	headers := []string{"Date", "Exercise", "Volume (sets×reps×" + units.WeightAbbr() + ")"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Date.UTC().Format("2006-01-02"),
			r.ExerciseName,
			weightCell(r.Volume, units),
		})
	}
	return RenderTable(headers, out)
}
