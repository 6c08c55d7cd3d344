package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseStats returns a filled, valid participant record for the strategy tests.
func baseStats() ParticipantStats {
	return ParticipantStats{
		Puuid:                          "puuid-target",
		ChampionId:                     54,
		ChampionName:                   "Malphite",
		TeamId:                         100,
		Kills:                          2,
		Deaths:                         3,
		Assists:                        25,
		TotalDamageDealtToChampions:    15000,
		TotalDamageTaken:               45000,
		DamageSelfMitigated:            40000,
		TotalTimeCCDealt:               300,
		VisionScore:                    20,
		GoldEarned:                     12000,
		TotalHeal:                      2000,
		TotalDamageShieldedOnTeammates: 1000,
		Win:                            true,
	}
}

func TestZeroTeamKillsYieldsZeroParticipation(t *testing.T) {
	// With no damage either, the whole score must collapse to 0, never a fault.
	stats := baseStats()
	stats.Kills = 0
	stats.Assists = 0
	stats.TotalDamageDealtToChampions = 0

	agg := TeamAggregate{TotalKills: 0}

	assert.Equal(t, 0.0, assassinStrategy{}.BaseScore(stats, agg))
	assert.Equal(t, 0.0, marksmanStrategy{}.BaseScore(stats, agg))
}

func TestTankBaseScoreFixture(t *testing.T) {
	stats := baseStats()
	agg := TeamAggregate{TotalKills: 23}

	// tank = (45000+40000)/2 = 42500 -> 42.5 of the 100000 cap
	// kp   = 27/23*100 = 117.391304...
	// dmg  = 15000/50000*100 = 30
	// base = 42.5*0.6 + 117.391304*0.3 + 30*0.1 = 63.717391...
	base := tankStrategy{}.BaseScore(stats, agg)
	assert.InDelta(t, 63.717391, base, 1e-6)
}

func TestStrategiesAreDeterministic(t *testing.T) {
	stats := baseStats()
	agg := TeamAggregate{TotalKills: 23, TotalDamageDealt: 90000, TotalDamageTaken: 150000}

	for archetype, strategy := range strategies {
		first := strategy.BaseScore(stats, agg)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, strategy.BaseScore(stats, agg), "strategy %s not deterministic", archetype)
		}
	}
}

func TestBaseScoreIsClamped(t *testing.T) {
	// Absurd telemetry: every sub-score at cap plus a >100 kill participation.
	stats := baseStats()
	stats.Kills = 30
	stats.Assists = 40
	stats.TotalDamageDealtToChampions = 500000
	stats.TotalDamageTaken = 500000
	stats.DamageSelfMitigated = 500000
	stats.TotalHeal = 100000
	stats.TotalDamageShieldedOnTeammates = 100000
	stats.TotalTimeCCDealt = 100000

	agg := TeamAggregate{TotalKills: 30}

	for archetype, strategy := range strategies {
		base := strategy.BaseScore(stats, agg)
		assert.LessOrEqual(t, base, 100.0, "strategy %s exceeded the clamp", archetype)
		assert.GreaterOrEqual(t, base, 0.0, "strategy %s went negative", archetype)
	}
}

// The per archetype emphasis must hold: the dominant stat family moves the
// score more than the secondary ones.
func TestArchetypeEmphasisOrdering(t *testing.T) {
	agg := TeamAggregate{TotalKills: 20}

	neutral := baseStats()
	neutral.Kills = 5
	neutral.Assists = 5
	neutral.TotalDamageDealtToChampions = 20000
	neutral.TotalDamageTaken = 20000
	neutral.DamageSelfMitigated = 20000
	neutral.TotalHeal = 5000
	neutral.TotalDamageShieldedOnTeammates = 2000

	moreDamage := neutral
	moreDamage.TotalDamageDealtToChampions += 10000

	moreTank := neutral
	moreTank.TotalDamageTaken += 10000
	moreTank.DamageSelfMitigated += 10000

	tests := []struct {
		name     string
		strategy Strategy
		dominant ParticipantStats
		lesser   ParticipantStats
	}{
		{name: "tankValuesTankingOverDamage", strategy: tankStrategy{}, dominant: moreTank, lesser: moreDamage},
		{name: "fighterValuesTankingOverDamage", strategy: fighterStrategy{}, dominant: moreTank, lesser: moreDamage},
		{name: "marksmanValuesDamageOverTanking", strategy: marksmanStrategy{}, dominant: moreDamage, lesser: moreTank},
		{name: "assassinValuesDamageOverTanking", strategy: assassinStrategy{}, dominant: moreDamage, lesser: moreTank},
		{name: "mageValuesDamageOverTanking", strategy: mageStrategy{}, dominant: moreDamage, lesser: moreTank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dominantScore := tt.strategy.BaseScore(tt.dominant, agg)
			lesserScore := tt.strategy.BaseScore(tt.lesser, agg)
			assert.Greater(t, dominantScore, lesserScore)
		})
	}
}

func TestSupportsWeightParticipationOverDamage(t *testing.T) {
	agg := TeamAggregate{TotalKills: 20}

	neutral := baseStats()
	neutral.Kills = 2
	neutral.Assists = 6
	neutral.TotalDamageDealtToChampions = 10000

	moreAssists := neutral
	moreAssists.Assists += 8

	moreDamage := neutral
	moreDamage.TotalDamageDealtToChampions += 8000

	for _, strategy := range []Strategy{supportTankStrategy{}, supportMageStrategy{}} {
		assistGain := strategy.BaseScore(moreAssists, agg) - strategy.BaseScore(neutral, agg)
		damageGain := strategy.BaseScore(moreDamage, agg) - strategy.BaseScore(neutral, agg)
		assert.Greater(t, assistGain, damageGain)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ParticipantStats)
	}{
		{name: "missingPuuid", mutate: func(s *ParticipantStats) { s.Puuid = "" }},
		{name: "missingChampion", mutate: func(s *ParticipantStats) { s.ChampionId = 0 }},
		{name: "missingTeam", mutate: func(s *ParticipantStats) { s.TeamId = 0 }},
		{name: "negativeKills", mutate: func(s *ParticipantStats) { s.Kills = -1 }},
		{name: "negativeDamageTaken", mutate: func(s *ParticipantStats) { s.TotalDamageTaken = -500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := baseStats()
			tt.mutate(&stats)

			err := stats.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingStatField)
		})
	}

	valid := baseStats()
	assert.NoError(t, valid.Validate())
}
