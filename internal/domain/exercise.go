package domain

import (
	"strings"
	"time"
)

// Exercise is a user-defined exercise type. Name is unique case-insensitively;
// workouts reference it by denormalized name, aliases by id.
type Exercise struct {
	ID      int64
	Name    string
	Type    ExerciseType
	Muscles *string

	// Per-metric logging flags, independently toggled.
	LogWeight   bool
	LogReps     bool
	LogDuration bool
	LogDistance bool

	CreatedAt time.Time
}

// MuscleList splits the comma-separated muscles field into trimmed tags.
func (e *Exercise) MuscleList() []string {
	if e.Muscles == nil || strings.TrimSpace(*e.Muscles) == "" {
		return nil
	}
	parts := strings.Split(*e.Muscles, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasMuscle reports whether the given muscle tag appears in the exercise's
// muscle list (case-insensitive).
func (e *Exercise) HasMuscle(muscle string) bool {
	want := strings.ToLower(strings.TrimSpace(muscle))
	for _, m := range e.MuscleList() {
		if strings.ToLower(m) == want {
			return true
		}
	}
	return false
}

// DefaultLogFlags returns the per-metric logging defaults for an exercise
// type, used when a definition is created without explicit flags.
func DefaultLogFlags(t ExerciseType) (weight, reps, duration, distance bool) {
	switch t {
	case ExerciseCardio:
		return false, false, true, true
	case ExerciseBodyWeight:
		return true, true, false, false
	default: // resistance
		return true, true, false, false
	}
}

// Alias maps a unique shorthand string to one exercise id.
type Alias struct {
	Name       string
	ExerciseID int64
}
