package scoring

// Normalization cap for the marksman damage output.
// Higher than the assassin cap: sustained damage carries ARAM fights.
const marksmanMaxDamage = 65000

// marksmanStrategy scores marksmen:
// base = (damage x 0.7) + (KP x 0.3)
type marksmanStrategy struct{}

func (marksmanStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := killParticipation(stats.Kills, stats.Assists, team.TotalKills)
	damage := normalize(float64(stats.TotalDamageDealtToChampions), marksmanMaxDamage)

	return clampScore(damage*0.7 + kp*0.3)
}
