package slot

import "errors"

var (
	// ErrEmptyPool is returned when a spin is requested with no names to draw from
	ErrEmptyPool = errors.New("name list is empty, cannot start spinning")

	// ErrExcludedWinner is returned when the shuffled candidate winner is in the exclude list
	// The caller is expected to spin again
	ErrExcludedWinner = errors.New("winner is excluded, re-spin")

	// ErrSpinInProgress is returned when the controller is asked to act while a spin is running
	ErrSpinInProgress = errors.New("spin already in progress")
)
