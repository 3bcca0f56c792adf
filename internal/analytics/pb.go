package analytics

import "github.com/alexanderramin/athlog/internal/domain"

// DetectPB compares a newly logged workout against the entire prior history
// of the same exercise and reports, per metric, whether a new personal best
// was set. Ties are not PBs; the first-ever occurrence of a metric is.
// Weight comparisons use effective weight so bodyweight-relative exercises
// compare like-for-like.
//
// Pure computation: no side effects, no notification policy. Callers decide
// whether and how to surface the result.
func DetectPB(history []*domain.Workout, w *domain.Workout) domain.PBInfo {
	var (
		maxWeight   *float64
		maxReps     *int64
		maxDuration *int64
		maxDistance *float64
	)
	for _, h := range history {
		maxWeight = maxOf(maxWeight, h.EffectiveWeight())
		maxReps = maxOf(maxReps, h.Reps)
		maxDuration = maxOf(maxDuration, h.DurationMin)
		maxDistance = maxOf(maxDistance, h.DistanceKm)
	}

	return domain.PBInfo{
		Weight:   compareMetric(maxWeight, w.EffectiveWeight()),
		Reps:     compareMetric(maxReps, w.Reps),
		Duration: compareMetric(maxDuration, w.DurationMin),
		Distance: compareMetric(maxDistance, w.DistanceKm),
	}
}

// AllTimeBests scans a full workout history for the maximum of each metric.
// Unlike DetectPB this is not event-triggered: it feeds the stats snapshot.
func AllTimeBests(workouts []*domain.Workout) domain.PersonalBests {
	var pb domain.PersonalBests
	for _, w := range workouts {
		pb.MaxWeight = maxOf(pb.MaxWeight, w.EffectiveWeight())
		pb.MaxReps = maxOf(pb.MaxReps, w.Reps)
		pb.MaxDurationMin = maxOf(pb.MaxDurationMin, w.DurationMin)
		pb.MaxDistanceKm = maxOf(pb.MaxDistanceKm, w.DistanceKm)
	}
	return pb
}

func compareMetric[T int64 | float64](previousMax, newValue *T) domain.PBMetric[T] {
	m := domain.PBMetric[T]{PreviousValue: previousMax}
	if newValue == nil {
		return m
	}
	if previousMax == nil || *newValue > *previousMax {
		m.Achieved = true
		m.NewValue = newValue
	}
	return m
}

func maxOf[T int64 | float64](cur, candidate *T) *T {
	if candidate == nil {
		return cur
	}
	if cur == nil || *candidate > *cur {
		return candidate
	}
	return cur
}
