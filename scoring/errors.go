package scoring

import (
	"errors"
)

var (
	// ErrUnknownChampion is returned when the champion can't be resolved on the tag table.
	ErrUnknownChampion = errors.New("unknown champion")

	// ErrMissingStatField is returned when a required field is absent from the input record.
	ErrMissingStatField = errors.New("missing stat field")

	// ErrDegenerateTeam is returned when the team size is outside [1,5]
	// or the target player is not among the teammates.
	ErrDegenerateTeam = errors.New("degenerate team")

	// ErrScoringFailed wraps any of the above on the engine boundary.
	ErrScoringFailed = errors.New("scoring failed")
)
