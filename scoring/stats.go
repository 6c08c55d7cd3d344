package scoring

import (
	"fmt"
)

// ParticipantStats holds the raw post-game telemetry of a single player.
// Owned by the caller for the duration of one scoring call.
type ParticipantStats struct {
	Puuid        string
	ChampionId   int
	ChampionName string
	TeamId       int

	Kills   int
	Deaths  int
	Assists int

	TotalDamageDealtToChampions    int
	TotalDamageTaken               int
	DamageSelfMitigated            int
	TotalTimeCCDealt               int
	VisionScore                    int
	GoldEarned                     int
	TotalHeal                      int
	TotalDamageShieldedOnTeammates int

	Win bool
}

// Validate verifies that the record carries every field the strategies depend on.
// Counters parsed from the API legitimately default to zero, so only absent
// identity fields and impossible negative values can be detected here.
func (s *ParticipantStats) Validate() error {
	if s.Puuid == "" {
		return fmt.Errorf("%w: puuid", ErrMissingStatField)
	}

	if s.ChampionId == 0 {
		return fmt.Errorf("%w: championId", ErrMissingStatField)
	}

	if s.TeamId == 0 {
		return fmt.Errorf("%w: teamId", ErrMissingStatField)
	}

	negatives := map[string]int{
		"kills":                       s.Kills,
		"deaths":                      s.Deaths,
		"assists":                     s.Assists,
		"totalDamageDealtToChampions": s.TotalDamageDealtToChampions,
		"totalDamageTaken":            s.TotalDamageTaken,
		"damageSelfMitigated":         s.DamageSelfMitigated,
		"totalTimeCCDealt":            s.TotalTimeCCDealt,
		"visionScore":                 s.VisionScore,
	}

	for field, value := range negatives {
		if value < 0 {
			return fmt.Errorf("%w: %s is negative", ErrMissingStatField, field)
		}
	}

	return nil
}

// TeamAggregate holds the totals of one team for a single match.
// Used only as normalization denominators, recomputed every scoring call.
type TeamAggregate struct {
	TotalKills       int
	TotalDamageDealt int
	TotalDamageTaken int
}

// ComputeTeamAggregate sums the totals over every teammate.
func ComputeTeamAggregate(teammates []ParticipantStats) TeamAggregate {
	var agg TeamAggregate
	for i := range teammates {
		agg.TotalKills += teammates[i].Kills
		agg.TotalDamageDealt += teammates[i].TotalDamageDealtToChampions
		agg.TotalDamageTaken += teammates[i].TotalDamageTaken
	}
	return agg
}
