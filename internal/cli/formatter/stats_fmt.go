package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/athlog/internal/domain"
)

// StatsBlock renders the full stats view for one exercise.
func StatsBlock(s *domain.ExerciseStats, units domain.Units) string {
	var b strings.Builder

	b.WriteString(Header("Stats: " + s.CanonicalName))
	b.WriteString("\n")

	write := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleBold.Render(label+":"), value)
	}

	write("Total workouts", fmt.Sprintf("%d", s.TotalWorkouts))
	if s.FirstWorkoutDate != nil {
		write("First workout", s.FirstWorkoutDate.UTC().Format("2006-01-02"))
	}
	if s.LastWorkoutDate != nil {
		write("Last workout", s.LastWorkoutDate.UTC().Format("2006-01-02"))
	}
	if s.AvgWorkoutsPerWeek != nil {
		write("Avg workouts/week", trimFloat(*s.AvgWorkoutsPerWeek))
	}
	if s.LongestGapDays != nil {
		write("Longest gap", plural(*s.LongestGapDays, "day"))
	}

	interval := plural(s.StreakIntervalDays, "day")
	write("Current streak", fmt.Sprintf("%d %s", s.CurrentStreak, Dim("(interval "+interval+")")))
	write("Longest streak", fmt.Sprintf("%d", s.LongestStreak))

	b.WriteString("\n")
	b.WriteString(Header("Personal Bests"))
	b.WriteString("\n")
	pb := s.PersonalBests
	if pb.MaxWeight == nil && pb.MaxReps == nil && pb.MaxDurationMin == nil && pb.MaxDistanceKm == nil {
		b.WriteString(Dim("none recorded") + "\n")
		return b.String()
	}
	if pb.MaxWeight != nil {
		write("Max weight", StyleGreen.Render(FormatWeight(*pb.MaxWeight, units)))
	}
	if pb.MaxReps != nil {
		write("Max reps", StyleGreen.Render(fmt.Sprintf("%d", *pb.MaxReps)))
	}
	if pb.MaxDurationMin != nil {
		write("Max duration", StyleGreen.Render(fmt.Sprintf("%d min", *pb.MaxDurationMin)))
	}
	if pb.MaxDistanceKm != nil {
		write("Max distance", StyleGreen.Render(FormatDistance(*pb.MaxDistanceKm, units)))
	}
	return b.String()
}
