package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/athlog/internal/domain"
)

// PBBanner renders the celebration block shown after a workout sets one or
// more personal bests. Metrics the user muted are filtered out before the
// banner is built; an all-muted PB renders nothing.
func PBBanner(pb domain.PBInfo, units domain.Units) string {
	var lines []string

	if pb.Weight.Achieved {
		lines = append(lines, pbLine("Weight",
			FormatWeight(*pb.Weight.NewValue, units),
			previous(pb.Weight.PreviousValue, func(v float64) string { return FormatWeight(v, units) })))
	}
	if pb.Reps.Achieved {
		lines = append(lines, pbLine("Reps",
			fmt.Sprintf("%d", *pb.Reps.NewValue),
			previous(pb.Reps.PreviousValue, func(v int64) string { return fmt.Sprintf("%d", v) })))
	}
	if pb.Duration.Achieved {
		lines = append(lines, pbLine("Duration",
			fmt.Sprintf("%d min", *pb.Duration.NewValue),
			previous(pb.Duration.PreviousValue, func(v int64) string { return fmt.Sprintf("%d min", v) })))
	}
	if pb.Distance.Achieved {
		lines = append(lines, pbLine("Distance",
			FormatDistance(*pb.Distance.NewValue, units),
			previous(pb.Distance.PreviousValue, func(v float64) string { return FormatDistance(v, units) })))
	}

	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleYellow.Render("★ Personal Best! ★"))
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

func pbLine(metric, newValue, prev string) string {
	line := "  " + StyleGreen.Render(metric+": "+newValue)
	if prev != "" {
		line += " " + Dim("(previous: "+prev+")")
	}
	return line
}

func previous[T int64 | float64](v *T, format func(T) string) string {
	if v == nil {
		return ""
	}
	return format(*v)
}
