package solver

import "errors"

var (
	// ErrConflictingFeedback means a position was reported Correct for two
	// different letters within one session.
	ErrConflictingFeedback = errors.New("solver: conflicting feedback")

	// ErrEmptyCandidateSet means no candidate satisfies the accumulated
	// constraints (a contradiction).
	ErrEmptyCandidateSet = errors.New("solver: no candidates remain")

	ErrMalformedWordSource = errors.New("solver: malformed word source")
	ErrEmptyWordSource     = errors.New("solver: word source is empty")

	// ErrSessionOver is returned when feedback arrives after a terminal outcome.
	ErrSessionOver = errors.New("solver: session is over")

	ErrMalformedFeedback     = errors.New("solver: malformed feedback")
	ErrInvalidFrequencyTable = errors.New("solver: invalid frequency table")
)
