package scoring

// Normalization cap for the assassin damage output.
const assassinMaxDamage = 60000

// assassinStrategy scores assassins on pure damage output:
// base = (damage x 0.7) + (KP x 0.3)
type assassinStrategy struct{}

func (assassinStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := killParticipation(stats.Kills, stats.Assists, team.TotalKills)
	damage := normalize(float64(stats.TotalDamageDealtToChampions), assassinMaxDamage)

	return clampScore(damage*0.7 + kp*0.3)
}
