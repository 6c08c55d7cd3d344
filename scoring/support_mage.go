package scoring

// Normalization caps for the mage support profile.
const (
	supportMageMaxTankScore = 40000
	supportMageMaxUtility   = 30000
)

// supportMageStrategy scores enabling supports:
// base = (KP x 0.5) + (utility x 0.4) + (tank x 0.1)
// Personal damage only counts at half value inside the utility blend.
type supportMageStrategy struct{}

func (supportMageStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := supportKillParticipation(stats.Kills, stats.Assists, team.TotalKills)
	tank := normalize(tankScore(stats), supportMageMaxTankScore)

	rawUtility := float64(stats.TotalHeal+stats.TotalDamageShieldedOnTeammates) +
		float64(stats.TotalDamageDealtToChampions)*0.5
	utility := normalize(rawUtility, supportMageMaxUtility)

	return clampScore(kp*0.5 + utility*0.4 + tank*0.1)
}
