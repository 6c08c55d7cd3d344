package scoring

// Strategy computes the normalized base performance score of one participant.
// Implementations are pure functions of their inputs: no side effects,
// deterministic, safe for concurrent use.
type Strategy interface {
	BaseScore(stats ParticipantStats, team TeamAggregate) float64
}

// strategies is the closed dispatch table: the archetype set is fixed,
// so every archetype resolves statically to its strategy.
var strategies = map[Archetype]Strategy{
	Tank:        tankStrategy{},
	Fighter:     fighterStrategy{},
	Assassin:    assassinStrategy{},
	Marksman:    marksmanStrategy{},
	Mage:        mageStrategy{},
	SupportTank: supportTankStrategy{},
	SupportMage: supportMageStrategy{},
}

// StrategyFor returns the scoring strategy of the archetype.
func StrategyFor(archetype Archetype) (Strategy, bool) {
	strategy, ok := strategies[archetype]
	return strategy, ok
}

// killParticipation computes the participation on the team kills, scaled to 100.
// A zero team kill total is treated as denominator 1, yielding 0 instead of a fault.
func killParticipation(kills, assists, teamKills int) float64 {
	if teamKills <= 0 {
		teamKills = 1
	}
	return float64(kills+assists) / float64(teamKills) * 100
}

// supportKillParticipation weights kills at half value: enabling kills
// matters more than taking them for the support archetypes.
func supportKillParticipation(kills, assists, teamKills int) float64 {
	if teamKills <= 0 {
		teamKills = 1
	}
	return (float64(kills)*0.5 + float64(assists)) / float64(teamKills) * 100
}

// tankScore is the average of absorbed and self-mitigated damage.
func tankScore(stats ParticipantStats) float64 {
	return float64(stats.TotalDamageTaken+stats.DamageSelfMitigated) / 2
}

// normalize scales a raw value against its archetype cap, capped at 100.
func normalize(value, cap float64) float64 {
	if cap <= 0 {
		return 0
	}
	normalized := value / cap * 100
	if normalized > 100 {
		return 100
	}
	return normalized
}

// clampScore bounds the final base score to [0,100] for rank stability.
// Kill participation is used unormalized and can push the weighted sum above 100.
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
