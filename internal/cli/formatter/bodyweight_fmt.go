package formatter

import (
	"strconv"

	"github.com/alexanderramin/athlog/internal/domain"
)

// BodyweightTable renders logged bodyweight entries newest-first.
func BodyweightTable(entries []*domain.BodyweightEntry, units domain.Units) string {
	if len(entries) == 0 {
		return Dim("No bodyweight entries logged.") + "\n"
	}

	headers := []string{"ID", "Date", "Weight (" + units.WeightAbbr() + ")"}
	rows := make([][]string, 0, len(entries))
	for _, b := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Timestamp.UTC().Format("2006-01-02"),
			weightCell(b.Weight, units),
		})
	}
	return RenderTable(headers, rows)
}

// BodyweightSummary renders the latest weight against an optional target.
func BodyweightSummary(latest *domain.BodyweightEntry, target *float64, units domain.Units) string {
	out := Bold("Latest: ") + FormatWeight(latest.Weight, units) +
		Dim(" ("+latest.Timestamp.UTC().Format("2006-01-02")+")")
	if target == nil {
		return out + "\n"
	}
	diff := latest.Weight - *target
	out += "\n" + Bold("Target: ") + FormatWeight(*target, units)
	switch {
	case diff > 0:
		out += "  " + StyleYellow.Render(FormatWeight(diff, units)+" above target")
	case diff < 0:
		out += "  " + StyleGreen.Render(FormatWeight(-diff, units)+" below target")
	default:
		out += "  " + StyleGreen.Render("on target")
	}
	return out + "\n"
}
