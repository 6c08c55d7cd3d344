package scoring

// Normalization caps for the tank profile.
// Tank damage output is naturally low, so its damage cap is the smallest.
const (
	tankMaxTankScore = 100000
	tankMaxDamage    = 50000
)

// tankStrategy scores tanks:
// base = (tank x 0.6) + (KP x 0.3) + (damage x 0.1)
type tankStrategy struct{}

func (tankStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := killParticipation(stats.Kills, stats.Assists, team.TotalKills)
	tank := normalize(tankScore(stats), tankMaxTankScore)
	damage := normalize(float64(stats.TotalDamageDealtToChampions), tankMaxDamage)

	return clampScore(tank*0.6 + kp*0.3 + damage*0.1)
}
