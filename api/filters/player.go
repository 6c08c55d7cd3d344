package filters

// Limits applied to the list endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query parameters for the leaderboard.
type LeaderboardQueryParams struct {
	Limit int `form:"limit"`
}

// Query params for the player match history.
type PlayerMatchHistoryQueryParams struct {
	Limit int `form:"limit"`
}

// Normalize clamps the limit into the accepted range.
func (q *LeaderboardQueryParams) Normalize() {
	q.Limit = normalizeLimit(q.Limit)
}

// Normalize clamps the limit into the accepted range.
func (q *PlayerMatchHistoryQueryParams) Normalize() {
	q.Limit = normalizeLimit(q.Limit)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
