package scoring

// Normalization caps for the tanky support profile.
const (
	supportTankMaxTankScore = 70000
	supportTankMaxUtility   = 20000
)

// supportTankStrategy scores tanky supports:
// base = (tank x 0.4) + (KP x 0.4) + (utility x 0.2)
type supportTankStrategy struct{}

func (supportTankStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := supportKillParticipation(stats.Kills, stats.Assists, team.TotalKills)
	tank := normalize(tankScore(stats), supportTankMaxTankScore)

	// Utility is the healing and shielding provided to teammates.
	utility := normalize(float64(stats.TotalHeal+stats.TotalDamageShieldedOnTeammates), supportTankMaxUtility)

	return clampScore(tank*0.4 + kp*0.4 + utility*0.2)
}
