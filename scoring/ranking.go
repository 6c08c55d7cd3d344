package scoring

import (
	"fmt"
	"sort"
)

// MaxTeamSize is the ARAM team size.
const MaxTeamSize = 5

// TeamScore pairs a participant with its computed base score.
type TeamScore struct {
	Puuid     string
	BaseScore float64
}

// RankInTeam returns the 1-based rank of the target within its team,
// ordering by base score descending. Ties keep the input order, so the
// first seen participant wins.
func RankInTeam(targetPuuid string, teamScores []TeamScore) (int, error) {
	if len(teamScores) == 0 || len(teamScores) > MaxTeamSize {
		return 0, fmt.Errorf("%w: team size %d", ErrDegenerateTeam, len(teamScores))
	}

	ordered := make([]TeamScore, len(teamScores))
	copy(ordered, teamScores)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].BaseScore > ordered[j].BaseScore
	})

	for position, score := range ordered {
		if score.Puuid == targetPuuid {
			return position + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: player %s not in team", ErrDegenerateTeam, targetPuuid)
}
