package domain

import "fmt"

type ExerciseType string

const (
	ExerciseResistance ExerciseType = "resistance"
	ExerciseCardio     ExerciseType = "cardio"
	ExerciseBodyWeight ExerciseType = "body_weight"
)

// ValidExerciseTypes is the canonical set of accepted exercise type strings.
var ValidExerciseTypes = map[string]bool{
	"resistance": true, "cardio": true, "body_weight": true,
}

// ParseExerciseType maps a user-supplied type string to an ExerciseType.
// Accepts the canonical forms plus common spellings of body_weight.
func ParseExerciseType(s string) (ExerciseType, error) {
	switch s {
	case "resistance":
		return ExerciseResistance, nil
	case "cardio":
		return ExerciseCardio, nil
	case "body_weight", "bodyweight", "body-weight":
		return ExerciseBodyWeight, nil
	}
	return "", fmt.Errorf("unknown exercise type %q (want resistance, cardio, or body_weight)", s)
}

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits maps a user-supplied units string to a Units value.
func ParseUnits(s string) (Units, error) {
	switch s {
	case "metric":
		return UnitsMetric, nil
	case "imperial":
		return UnitsImperial, nil
	}
	return "", fmt.Errorf("unknown units %q (want metric or imperial)", s)
}

// WeightAbbr returns the display abbreviation for weights in these units.
func (u Units) WeightAbbr() string {
	if u == UnitsImperial {
		return "lbs"
	}
	return "kg"
}

// DistanceAbbr returns the display abbreviation for distances in these units.
func (u Units) DistanceAbbr() string {
	if u == UnitsImperial {
		return "mi"
	}
	return "km"
}

// Distances are stored canonically in kilometers; conversion happens only at
// the presentation boundary.
const (
	KmToMile = 0.621371
	MileToKm = 1.0 / KmToMile
)
