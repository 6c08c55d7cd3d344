package scoring

// Normalization caps for the fighter profile.
const (
	fighterMaxTankScore = 80000
	fighterMaxDamage    = 60000
)

// fighterStrategy scores fighters, the bruiser middle ground:
// base = (tank x 0.4) + (damage x 0.35) + (KP x 0.25)
type fighterStrategy struct{}

func (fighterStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := killParticipation(stats.Kills, stats.Assists, team.TotalKills)
	tank := normalize(tankScore(stats), fighterMaxTankScore)
	damage := normalize(float64(stats.TotalDamageDealtToChampions), fighterMaxDamage)

	return clampScore(tank*0.4 + damage*0.35 + kp*0.25)
}
