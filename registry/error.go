package registry

import "errors"

var (
	// ErrEmptyRegistry random selection attempted before any creature was populated
	ErrEmptyRegistry = errors.New("registry is empty")

	// ErrRandOutOfRange the random source returned an index outside [0, n)
	ErrRandOutOfRange = errors.New("random index out of range")

	// ErrInvalidRepetitions repetition count is negative
	ErrInvalidRepetitions = errors.New("repetitions must not be negative")
)
