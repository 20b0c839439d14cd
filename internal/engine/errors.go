package engine

import "errors"

var (
	// ErrInvalidPhase is returned when a phase number is outside 1-6.
	ErrInvalidPhase = errors.New("invalid phase number")

	// ErrPhaseIncomplete is returned when completion is requested for a
	// phase whose checklist is not at 100%.
	ErrPhaseIncomplete = errors.New("phase incomplete")

	// ErrPhaseAlreadyCompleted is returned when completion is requested
	// for a phase that is already completed.
	ErrPhaseAlreadyCompleted = errors.New("phase already completed")

	// ErrPhaseNotCompleted is returned when reopening a phase that is not
	// completed.
	ErrPhaseNotCompleted = errors.New("phase not completed")

	// ErrUnknownChecklistItem is returned when a toggle names an item that
	// is not in the phase's catalog.
	ErrUnknownChecklistItem = errors.New("unknown checklist item")
)
