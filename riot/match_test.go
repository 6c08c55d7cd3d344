package riot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify the millisecond timestamps get converted properly.
func TestRiotTimeUnmarshal(t *testing.T) {
	var rt RiotTime
	err := json.Unmarshal([]byte("1730000000000"), &rt)
	require.NoError(t, err)

	expected := time.UnixMilli(1730000000000)
	assert.True(t, expected.Equal(rt.Time()))
}

func TestRiotTimeUnmarshalInvalid(t *testing.T) {
	var rt RiotTime
	err := json.Unmarshal([]byte(`"not-a-timestamp"`), &rt)
	assert.Error(t, err)
}

// Verify the match payload decoding keeps the stats the scorer depends on.
func TestMatchDataDecode(t *testing.T) {
	payload := `{
		"metadata": {"matchId": "EUW1_7000000001"},
		"info": {
			"gameCreation": 1730000000000,
			"gameDuration": 1260,
			"gameMode": "ARAM",
			"gameVersion": "14.21.585.1234",
			"queueId": 450,
			"participants": [
				{
					"assists": 10,
					"championId": 54,
					"championName": "Malphite",
					"damageSelfMitigated": 50000,
					"deaths": 4,
					"goldEarned": 12000,
					"kills": 10,
					"puuid": "puuid-target",
					"riotIdGameName": "Faker",
					"riotIdTagline": "KR1",
					"teamId": 100,
					"totalDamageDealtToChampions": 20000,
					"totalDamageShieldedOnTeammates": 0,
					"totalDamageTaken": 50000,
					"totalHeal": 3000,
					"totalTimeCCDealt": 200,
					"visionScore": 5,
					"win": true
				}
			]
		}
	}`

	var match MatchData
	err := json.Unmarshal([]byte(payload), &match)
	require.NoError(t, err)

	assert.Equal(t, "EUW1_7000000001", match.Metadata.MatchId)
	assert.Equal(t, AramQueueId, match.Info.QueueId)
	assert.Equal(t, 1260, match.Info.GameDuration)
	require.Len(t, match.Info.Participants, 1)

	player := match.Info.Participants[0]
	assert.Equal(t, "puuid-target", player.Puuid)
	assert.Equal(t, 54, player.ChampionId)
	assert.Equal(t, "Malphite", player.ChampionName)
	assert.Equal(t, 100, player.TeamId)
	assert.Equal(t, 50000, player.DamageSelfMitigated)
	assert.True(t, player.Win)
}
