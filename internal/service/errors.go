package service

import "errors"

var (
	// ErrInvalidInput marks validation failures on user-supplied values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoWorkoutData is returned when stats are requested for an exercise
	// that has no logged workouts.
	ErrNoWorkoutData = errors.New("no workout data")

	// ErrNameTaken is returned when an exercise or alias name collides with
	// an existing one in either namespace.
	ErrNameTaken = errors.New("name already in use")
)
