package formatter

import (
	"strconv"

	"github.com/alexanderramin/athlog/internal/domain"
)

// ExerciseTable renders exercise definitions with their tracked metrics.
func ExerciseTable(exercises []*domain.Exercise) string {
	if len(exercises) == 0 {
		return Dim("No exercises defined.") + "\n"
	}

	headers := []string{"ID", "Name", "Type", "Muscles", "Logs"}
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			string(e.Type),
			formatStringPtr(e.Muscles),
			logFlagsSummary(e),
		})
	}
	headers, rows = PruneEmptyColumns(headers, rows, "ID", "Name", "Type")
	return RenderTable(headers, rows)
}

func logFlagsSummary(e *domain.Exercise) string {
	var parts []string
	if e.LogWeight {
		parts = append(parts, "weight")
	}
	if e.LogReps {
		parts = append(parts, "reps")
	}
	if e.LogDuration {
		parts = append(parts, "duration")
	}
	if e.LogDistance {
		parts = append(parts, "distance")
	}
	if len(parts) == 0 {
		return Dim("none")
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}

// AliasTable renders aliases next to the exercises they point at. The two
// slices are index-aligned.
func AliasTable(aliases []domain.Alias, exercises []*domain.Exercise) string {
	if len(aliases) == 0 {
		return Dim("No aliases defined.") + "\n"
	}

	headers := []string{"Alias", "Exercise", "ID"}
	rows := make([][]string, 0, len(aliases))
	for i, a := range aliases {
		rows = append(rows, []string{
			a.Name,
			exercises[i].Name,
			strconv.FormatInt(a.ExerciseID, 10),
		})
	}
	return RenderTable(headers, rows)
}
