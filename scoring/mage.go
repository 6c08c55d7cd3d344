package scoring

// Normalization caps for the mage profile.
const (
	mageMaxDamage  = 60000
	mageMaxUtility = 6000
)

// mageStrategy scores mages, damage first with a small utility share:
// base = (damage x 0.6) + (KP x 0.3) + (utility x 0.1)
type mageStrategy struct{}

func (mageStrategy) BaseScore(stats ParticipantStats, team TeamAggregate) float64 {
	kp := killParticipation(stats.Kills, stats.Assists, team.TotalKills)
	damage := normalize(float64(stats.TotalDamageDealtToChampions), mageMaxDamage)

	// Utility blends crowd control with the scaled vision score.
	utility := normalize(float64(stats.TotalTimeCCDealt+stats.VisionScore*100), mageMaxUtility)

	return clampScore(damage*0.6 + kp*0.3 + utility*0.1)
}
