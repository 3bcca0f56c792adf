package domain

import "time"

// Workout is a single logged training entry. The exercise is referenced by
// denormalized name and joined back to its definition at read time, so
// ExerciseType may be nil if the definition was deleted after logging.
//
// For body_weight exercises Weight holds only the additional weight; the
// athlete's bodyweight at logging time is captured in Bodyweight.
type Workout struct {
	ID           int64
	ExerciseName string
	Timestamp    time.Time

	Sets            *int64
	Reps            *int64
	Weight          *float64
	DurationMin     *int64
	DistanceKm      *float64
	Bodyweight      *float64
	Notes           *string
	ExerciseType    *ExerciseType
	ExerciseMuscles *string
}

// EffectiveWeight returns the single comparable weight value for this
// workout. For body_weight exercises it is the captured bodyweight (0 when
// none was available) plus the logged additional weight; for everything else
// it is the logged weight verbatim, which may be nil.
//
// PB detection, volume aggregation, and display all go through this method
// so the numbers stay consistent.
func (w *Workout) EffectiveWeight() *float64 {
	if w.ExerciseType != nil && *w.ExerciseType == ExerciseBodyWeight {
		var base, extra float64
		if w.Bodyweight != nil {
			base = *w.Bodyweight
		}
		if w.Weight != nil {
			extra = *w.Weight
		}
		total := base + extra
		return &total
	}
	return w.Weight
}

// Date returns the UTC calendar date of the workout, truncated to midnight.
func (w *Workout) Date() time.Time {
	y, m, d := w.Timestamp.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BodyweightEntry is a logged bodyweight measurement. "Latest" always means
// the entry with the maximum timestamp, not the highest id.
type BodyweightEntry struct {
	ID        int64
	Timestamp time.Time
	Weight    float64
}
